package models

// PlaceholderImage is stored as the cover reference when an item is created
// without an uploaded cover image.
const PlaceholderImage = "portfolio-placeholder"

type PortfolioItemModel struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	ServiceID       *int     `json:"serviceId"`
	CategoryID      *int     `json:"categoryId"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Tags            []string `json:"tags"`
	Tools           []string `json:"tools"`
	Featured        bool     `json:"featured"`
	Client          string   `json:"client"`
	Year            string   `json:"year"`
	CoverImage      string   `json:"coverImage"`
	// Image mirrors CoverImage for older readers; the two are kept equal.
	Image         string   `json:"image"`
	GalleryImages []string `json:"galleryImages"`
}

// PortfolioInput is the coerced form of a multipart create/update request.
// Multipart fields arrive as strings; the controller normalizes them into
// this struct before any persistence logic runs. Nil pointer/slice fields
// mean "not supplied" and leave the stored value untouched on update.
type PortfolioInput struct {
	Title           *string
	ServiceID       *int
	CategoryID      *int
	Description     *string
	FullDescription *string
	Tags            []string
	Tools           []string
	Featured        *bool
	Client          *string
	Year            *string

	// CoverUpload marks the first uploaded file as the new cover image;
	// remaining files append to the gallery. Without it all files are
	// gallery additions.
	CoverUpload bool
	// UploadedFiles are blob references already written by the controller.
	UploadedFiles []string
	// ExistingCover / ExistingGallery override the stored references before
	// new uploads are appended, letting the caller prune or reorder retained
	// images. Nil means "keep the stored value".
	ExistingCover   *string
	ExistingGallery []string
}
