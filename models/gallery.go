package models

// GalleryItem is a single image shown on the public site.
type GalleryItem struct {
	ID       string `bson:"id" json:"id"`
	URL      string `bson:"url" json:"url"`
	Title    string `bson:"title" json:"title"`
	Category string `bson:"category" json:"category"`
}
