package models

// NumerologyInsights maps a personal-year number (1..9) to the text shown
// to clients in that year. Administrator-edited.
type NumerologyInsights map[int]string

// DefaultNumerologyInsights returns the stock personal-year texts.
func DefaultNumerologyInsights() NumerologyInsights {
	return NumerologyInsights{
		1: "את נמצאת בשנת 1 - שנה של התחלות חדשות, יוזמה ופריצת דרך. עידן חדש נפתח עבורך. תזמון מושלם לטיפול!",
		2: "את נמצאת בשנת 2 - שנה של חיבור, רגישות וזוגיות. זמן לעבוד על שיתופי פעולה והקשבה פנימית.",
		3: "את נמצאת בשנת 3 - שנה של ביטוי אישי, יצירתיות ושמחה. הגעת כדי להוציא את הקול שלך החוצה.",
		4: "את נמצאת בשנת 4 - שנה של בניה, יציבות ומיקוד. זמן להניח יסודות חזקים לעתיד שלך. טיפול יעזור למרכז אותך.",
		5: "את נמצאת בשנת 5 - שנה של תנועה, שחרור ושינויים. הקליניקה היא מקום בטוח לעבד את כל ההתפתחויות האלה.",
		6: "את נמצאת בשנת 6 - שנה של משפחה, הרמוניה ואהבה. זמן לטפל בבית הפנימי שלך. אני כאן בשבילך.",
		7: "את נמצאת בשנת 7 - שנה של חקירה פנימית, התבוננות וצמיחה רוחנית. זו שנה שקוראת לטיפול ולגילוי עצמי עמוק.",
		8: "את נמצאת בשנת 8 - שנה של עוצמה, קריירה ומימוש. זמן לקטוף פירות. נלמד איך להחזיק את הכוח הזה יחד.",
		9: "את נמצאת בשנת 9 - שנה של סיומים, סגירת מעגלים ושחרור. הטיפול יסייע לך להרפות ממה שלא משרת אותך יותר לקראת התחלה חדשה.",
	}
}

// DefaultServices returns the clinic's stock catalog, used to seed an empty
// services collection.
func DefaultServices() []Service {
	return []Service{
		{
			ID:          "1",
			Type:        ServiceDiagnosis,
			Duration:    60,
			Price:       538,
			Description: "פגישת עומק למיפוי: דפוסים מעכבים, חסמים רגשיים חוזרים, חוזקות נשמתיות, ייעוד ושפע. הכוונה מדויקת לפי המטרה.",
			IsActive:    true,
			ImageURL:    "https://images.unsplash.com/photo-1515516089376-88db1e26e9c0?auto=format&fit=crop&q=80&w=1000",
		},
		{
			ID:          "2",
			Type:        ServiceFocused,
			Duration:    60,
			Price:       1738,
			Description: "תהליך ממוקד הכולל אבחון נומרולוגי מעמיק + 3 פגישות ליווי רגשיות לשינוי פנימי.",
			IsActive:    true,
			ImageURL:    "https://images.unsplash.com/photo-1528698827591-e19ccd7bc23d?auto=format&fit=crop&q=80&w=1000",
		},
		{
			ID:          "3",
			Type:        ServiceDeep,
			Duration:    60,
			Price:       2438,
			Description: "תהליך עומק לשינוי משמעותי: אבחון נומרולוגי + 5 פגישות ליווי רגשיות לעבודה פנימית מדויקת.",
			IsActive:    true,
			ImageURL:    "https://images.unsplash.com/photo-1506126613408-eca07ce68773?auto=format&fit=crop&q=80&w=1000",
		},
		{
			ID:          "4",
			Type:        ServicePremium,
			Duration:    60,
			Price:       3438,
			Description: "המסלול המקיף ביותר: אבחון נומרולוגי + 8 פגישות ליווי + ליווי אישי בין המפגשים למקסימום תוצאות.",
			IsActive:    true,
			ImageURL:    "https://images.unsplash.com/photo-1494438639946-1ebd1d20bf85?auto=format&fit=crop&q=80&w=1000",
		},
	}
}
