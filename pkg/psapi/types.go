package psapi

import (
	"time"
)

// Paging represents paging counters on v4 list responses.
type Paging struct {
	Total   int `json:"total"    yaml:"total"`
	Page    int `json:"page"     yaml:"page"`
	PerPage int `json:"per_page" yaml:"per_page"`
}

// ListResponse represents a v4 list response.
type ListResponse[T any] struct {
	Paging Paging `json:"paging" yaml:"paging"`
	Items  []T    `json:"items"  yaml:"items"`
}

// Session represents the result of a login call.
type Session struct {
	Token             string `json:"token"               yaml:"token"`
	OrgID             string `json:"org_id"              yaml:"org_id"`
	TwoFactorRequired bool   `json:"two_factor_required" yaml:"two_factor_required"`
}

// SessionInfo represents the current session as reported by the API.
type SessionInfo struct {
	UserID        string     `json:"user_id"              yaml:"user_id"`
	OrgID         string     `json:"org_id"               yaml:"org_id"`
	Email         string     `json:"email"                yaml:"email"`
	Authenticated bool       `json:"authenticated"        yaml:"authenticated"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// Visibility values accepted by collections and galleries.
const (
	VisibilityEveryone   = "everyone"
	VisibilityPrivate    = "private"
	VisibilityPermission = "permission"
)

// Collection represents a collection, the container node of the library tree.
type Collection struct {
	ID          string     `json:"collection_id"         yaml:"collection_id"`
	Name        string     `json:"name"                  yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Visibility  string     `json:"visibility"            yaml:"visibility"`
	ParentID    string     `json:"parent_id,omitempty"   yaml:"parent_id,omitempty"`
	KeyImageID  string     `json:"key_image_id,omitempty" yaml:"key_image_id,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	ModifiedAt  *time.Time `json:"modified_at,omitempty" yaml:"modified_at,omitempty"`
}

// CollectionList represents a v4 list of collections.
type CollectionList = ListResponse[Collection]

// CollectionCreateRequest represents a request to create a collection.
type CollectionCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"  yaml:"visibility,omitempty"`
	ParentID    string `json:"parent_id,omitempty"   yaml:"parent_id,omitempty"`
}

// CollectionUpdateRequest represents a request to update a collection.
type CollectionUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Visibility  *string `json:"visibility,omitempty"  yaml:"visibility,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"   yaml:"parent_id,omitempty"`
}

// CollectionChild is one entry of a collection's children listing. Exactly
// one of Collection or Gallery is set, discriminated by Type.
type CollectionChild struct {
	Type       string      `json:"type"                 yaml:"type"`
	Collection *Collection `json:"collection,omitempty" yaml:"collection,omitempty"`
	Gallery    *Gallery    `json:"gallery,omitempty"    yaml:"gallery,omitempty"`
}

// CollectionChildList represents a v4 list of collection children.
type CollectionChildList = ListResponse[CollectionChild]

// Gallery represents a gallery, the leaf node holding media.
type Gallery struct {
	ID          string     `json:"gallery_id"            yaml:"gallery_id"`
	Name        string     `json:"name"                  yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Visibility  string     `json:"visibility"            yaml:"visibility"`
	ParentID    string     `json:"parent_id,omitempty"   yaml:"parent_id,omitempty"`
	KeyImageID  string     `json:"key_image_id,omitempty" yaml:"key_image_id,omitempty"`
	MediaCount  int        `json:"media_count"           yaml:"media_count"`
	CreatedAt   *time.Time `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	ModifiedAt  *time.Time `json:"modified_at,omitempty" yaml:"modified_at,omitempty"`
}

// GalleryList represents a v4 list of galleries.
type GalleryList = ListResponse[Gallery]

// GalleryCreateRequest represents a request to create a gallery.
type GalleryCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"  yaml:"visibility,omitempty"`
	ParentID    string `json:"parent_id,omitempty"   yaml:"parent_id,omitempty"`
}

// GalleryUpdateRequest represents a request to update a gallery.
type GalleryUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Visibility  *string `json:"visibility,omitempty"  yaml:"visibility,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"   yaml:"parent_id,omitempty"`
}

// Media represents a single asset (image, video, or document).
type Media struct {
	ID         string     `json:"media_id"              yaml:"media_id"`
	GalleryID  string     `json:"gallery_id,omitempty"  yaml:"gallery_id,omitempty"`
	FileName   string     `json:"file_name"             yaml:"file_name"`
	MimeType   string     `json:"mime_type,omitempty"   yaml:"mime_type,omitempty"`
	FileSize   int64      `json:"file_size"             yaml:"file_size"`
	Width      int        `json:"width,omitempty"       yaml:"width,omitempty"`
	Height     int        `json:"height,omitempty"      yaml:"height,omitempty"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty" yaml:"uploaded_at,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty" yaml:"modified_at,omitempty"`
}

// MediaList represents a v4 list of media.
type MediaList = ListResponse[Media]

// MediaUpdateRequest represents a request to update a media record.
type MediaUpdateRequest struct {
	FileName *string `json:"file_name,omitempty" yaml:"file_name,omitempty"`
}

// MediaMetadata represents the embedded IPTC metadata of an asset.
type MediaMetadata struct {
	Title       string   `json:"title,omitempty"       yaml:"title,omitempty"`
	Caption     string   `json:"caption,omitempty"     yaml:"caption,omitempty"`
	Keywords    []string `json:"keywords,omitempty"    yaml:"keywords,omitempty"`
	Credit      string   `json:"credit,omitempty"      yaml:"credit,omitempty"`
	Copyright   string   `json:"copyright,omitempty"   yaml:"copyright,omitempty"`
	City        string   `json:"city,omitempty"        yaml:"city,omitempty"`
	Country     string   `json:"country,omitempty"     yaml:"country,omitempty"`
	Headline    string   `json:"headline,omitempty"    yaml:"headline,omitempty"`
	Instruction string   `json:"instruction,omitempty" yaml:"instruction,omitempty"`
}

// MediaMetadataUpdateRequest represents a metadata update. Nil fields are
// left untouched by the server.
type MediaMetadataUpdateRequest struct {
	Title     *string  `json:"title,omitempty"     yaml:"title,omitempty"`
	Caption   *string  `json:"caption,omitempty"   yaml:"caption,omitempty"`
	Keywords  []string `json:"keywords,omitempty"  yaml:"keywords,omitempty"`
	Credit    *string  `json:"credit,omitempty"    yaml:"credit,omitempty"`
	Copyright *string  `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	City      *string  `json:"city,omitempty"      yaml:"city,omitempty"`
	Country   *string  `json:"country,omitempty"   yaml:"country,omitempty"`
	Headline  *string  `json:"headline,omitempty"  yaml:"headline,omitempty"`
}

// User represents an account.
type User struct {
	ID        string     `json:"user_id"              yaml:"user_id"`
	Email     string     `json:"email"                yaml:"email"`
	FirstName string     `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"  yaml:"last_name,omitempty"`
	OrgID     string     `json:"org_id,omitempty"     yaml:"org_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Organization represents an organization account.
type Organization struct {
	ID        string     `json:"org_id"               yaml:"org_id"`
	Name      string     `json:"name"                 yaml:"name"`
	Plan      string     `json:"plan,omitempty"       yaml:"plan,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// OrgMember represents one member of an organization.
type OrgMember struct {
	UserID string `json:"user_id" yaml:"user_id"`
	Email  string `json:"email"   yaml:"email"`
	Role   string `json:"role"    yaml:"role"`
}

// OrgMemberList represents a v4 list of organization members.
type OrgMemberList = ListResponse[OrgMember]
