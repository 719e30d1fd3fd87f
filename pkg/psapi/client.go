package psapi

import (
	"context"
	"time"
)

// Client is the v4 API client.
type Client interface {
	Auth() AuthClient
	Collections() CollectionsClient
	Galleries() GalleriesClient
	Media() MediaClient
	Users() UsersClient
	Organizations() OrganizationsClient
}

// AuthClient manages the session lifecycle. Login is the only operation
// permitted before a session token exists.
type AuthClient interface {
	Login(ctx context.Context, email, password, orgID string) (*Session, error)
	VerifyTwoFactor(ctx context.Context, code string) (*Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*SessionInfo, error)
}

// CollectionsClient manages collections.
type CollectionsClient interface {
	List(ctx context.Context, params *QueryParams) (*CollectionList, error)
	Get(ctx context.Context, collectionID string) (*Collection, error)
	Create(ctx context.Context, request *CollectionCreateRequest) (*Collection, error)
	Update(ctx context.Context, collectionID string, request *CollectionUpdateRequest) (*Collection, error)
	Delete(ctx context.Context, collectionID string) error
	Children(ctx context.Context, collectionID string, params *QueryParams) (*CollectionChildList, error)
	SetVisibility(ctx context.Context, collectionID, visibility string) (*Collection, error)
}

// GalleriesClient manages galleries.
type GalleriesClient interface {
	List(ctx context.Context, params *QueryParams) (*GalleryList, error)
	Get(ctx context.Context, galleryID string) (*Gallery, error)
	Create(ctx context.Context, request *GalleryCreateRequest) (*Gallery, error)
	Update(ctx context.Context, galleryID string, request *GalleryUpdateRequest) (*Gallery, error)
	Delete(ctx context.Context, galleryID string) error
	ListMedia(ctx context.Context, galleryID string, params *QueryParams) (*MediaList, error)
	AddMedia(ctx context.Context, galleryID, mediaID string) error
	RemoveMedia(ctx context.Context, galleryID, mediaID string) error
	SetKeyImage(ctx context.Context, galleryID, mediaID string) (*Gallery, error)
}

// MediaClient manages individual assets.
type MediaClient interface {
	Get(ctx context.Context, mediaID string) (*Media, error)
	Update(ctx context.Context, mediaID string, request *MediaUpdateRequest) (*Media, error)
	Delete(ctx context.Context, mediaID string) error
	Download(ctx context.Context, mediaID string) ([]byte, error)
	Upload(ctx context.Context, galleryID, fileName string, bits []byte) (*Media, error)
	GetMetadata(ctx context.Context, mediaID string) (*MediaMetadata, error)
	UpdateMetadata(ctx context.Context, mediaID string, request *MediaMetadataUpdateRequest) (*MediaMetadata, error)
	Move(ctx context.Context, mediaID, galleryID string) (*Media, error)
}

// UsersClient reads account information.
type UsersClient interface {
	Me(ctx context.Context) (*User, error)
	Get(ctx context.Context, userID string) (*User, error)
}

// OrganizationsClient reads organization information.
type OrganizationsClient interface {
	Get(ctx context.Context, orgID string) (*Organization, error)
	ListMembers(ctx context.Context, orgID string, params *QueryParams) (*OrgMemberList, error)
}

// V3Client is the v3 API client. Responses in this namespace arrive wrapped
// in a data envelope; the pipeline unwraps it, so envelope metadata is not
// reachable through these calls.
type V3Client interface {
	Auth() V3AuthClient
	Mem() MemClient
	Collections() V3CollectionsClient
	Galleries() V3GalleriesClient
	Images() V3ImagesClient
	Search() SearchClient
}

// V3AuthClient manages the v3 session. The v3 login stores the token only.
type V3AuthClient interface {
	Login(ctx context.Context, email, password, orgID string) (*Session, error)
	Logout(ctx context.Context) error
}

// MemClient reads the authenticated member's account.
type MemClient interface {
	Settings(ctx context.Context) (*V3MemSettings, error)
	ListCollections(ctx context.Context, params *QueryParams) ([]V3Collection, error)
	ListGalleries(ctx context.Context, params *QueryParams) ([]V3Gallery, error)
}

// V3CollectionsClient reads collections in the v3 namespace.
type V3CollectionsClient interface {
	Get(ctx context.Context, collectionID string) (*V3Collection, error)
	KeyImage(ctx context.Context, collectionID string) (*V3KeyImage, error)
}

// V3GalleriesClient reads galleries in the v3 namespace.
type V3GalleriesClient interface {
	Get(ctx context.Context, galleryID string) (*V3Gallery, error)
	ListImages(ctx context.Context, galleryID string, params *QueryParams) ([]V3Image, error)
	KeyImage(ctx context.Context, galleryID string) (*V3KeyImage, error)
}

// V3ImagesClient reads images in the v3 namespace.
type V3ImagesClient interface {
	Get(ctx context.Context, imageID string) (*V3Image, error)
	ListGalleries(ctx context.Context, imageID string, params *QueryParams) ([]V3ImageLink, error)
	Download(ctx context.Context, imageID string) ([]byte, error)
}

// SearchClient searches the library.
type SearchClient interface {
	Images(ctx context.Context, terms string, params *QueryParams) ([]V3SearchResult, error)
	Galleries(ctx context.Context, terms string, params *QueryParams) ([]V3SearchResult, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a client.
//
// APIKey is always required. Authentication is established either by calling
// Auth().Login after construction, by supplying Email/Password (psclient.New
// logs in during construction), or by supplying a previously issued
// AuthToken directly.
//
// The client performs no retries unless RetryMax is set; the remote API
// defines no retry contract, so retry policy belongs to the caller.
type Config struct {
	// Endpoint: base URL for the API (e.g. "https://www.photoshelter.com").
	// psclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	Endpoint string

	// APIKey is the client API key, attached to every request.
	APIKey string

	// Email and Password establish a session at construction time when both
	// are set.
	Email    string
	Password string

	// OrgID optionally scopes the login to an organization.
	OrgID string

	// AuthToken: a previously issued session token, used directly.
	AuthToken string

	// HTTPTimeout: optional default HTTP timeout. Per-call deadlines should
	// use the context passed to client methods.
	HTTPTimeout time.Duration

	// RetryMax: maximum number of opt-in retries for transient failures. 0
	// disables retries (the default).
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
