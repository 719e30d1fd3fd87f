package psapi

// v3 resource shapes. The v3 namespace predates the v4 field names; the
// request pipeline strips the surrounding data envelope, so these types
// describe the contents of the envelope's data field only.

// V3MemSettings represents the authenticated member's account settings.
type V3MemSettings struct {
	MemID       string `json:"mem_id"                 yaml:"mem_id"`
	Email       string `json:"email"                  yaml:"email"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	OrgID       string `json:"org_id,omitempty"       yaml:"org_id,omitempty"`
}

// V3Collection represents a collection in the v3 namespace.
type V3Collection struct {
	ID          string `json:"collection_id"         yaml:"collection_id"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Listed      bool   `json:"f_list"                yaml:"f_list"`
	Mode        string `json:"mode,omitempty"        yaml:"mode,omitempty"`
}

// V3Gallery represents a gallery in the v3 namespace.
type V3Gallery struct {
	ID          string `json:"gallery_id"            yaml:"gallery_id"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Listed      bool   `json:"f_list"                yaml:"f_list"`
	ImageCount  int    `json:"image_count,omitempty" yaml:"image_count,omitempty"`
}

// V3Image represents an image in the v3 namespace.
type V3Image struct {
	ID       string `json:"image_id"            yaml:"image_id"`
	FileName string `json:"file_name"           yaml:"file_name"`
	Width    int    `json:"width,omitempty"     yaml:"width,omitempty"`
	Height   int    `json:"height,omitempty"    yaml:"height,omitempty"`
	FileSize int64  `json:"file_size,omitempty" yaml:"file_size,omitempty"`
	Rating   int    `json:"rating,omitempty"    yaml:"rating,omitempty"`
}

// V3ImageLink represents an image's membership in a gallery.
type V3ImageLink struct {
	ImageID   string `json:"image_id"   yaml:"image_id"`
	GalleryID string `json:"gallery_id" yaml:"gallery_id"`
}

// V3KeyImage represents the key image of a collection or gallery.
type V3KeyImage struct {
	ImageID string `json:"image_id"           yaml:"image_id"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// V3SearchResult represents one search hit.
type V3SearchResult struct {
	ID       string  `json:"id"                 yaml:"id"`
	Type     string  `json:"type"               yaml:"type"`
	FileName string  `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	Name     string  `json:"name,omitempty"     yaml:"name,omitempty"`
	Score    float64 `json:"score,omitempty"    yaml:"score,omitempty"`
}
