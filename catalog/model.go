package catalog

import (
	"github.com/andreaschandra/fishpond-validator/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// Context is the context for a catalog operation
type Context struct {
	BaseCatalogURL string
	BaseSignURL    string
	sessionID      string
	sasTokens      map[string]string
}

// NewContext builds a Context from the environment defaults
func NewContext() *Context {
	return &Context{
		BaseCatalogURL: util.GetSTACAPIURL(),
		BaseSignURL:    util.GetSASAPIURL(),
	}
}

// AppName returns the application name
func (c *Context) AppName() string {
	return "fishpond-validator"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}

// SearchOptions are the search options for a catalog search request
type SearchOptions struct {
	Collections []string
	Bbox        geojson.BoundingBox
	DateRange   string
	Limit       int
}

// searchRequest is the STAC API /search request body
type searchRequest struct {
	Collections []string  `json:"collections"`
	Bbox        []float64 `json:"bbox,omitempty"`
	Datetime    string    `json:"datetime,omitempty"`
	Limit       int       `json:"limit,omitempty"`
}

// itemFieldsResults carries the STAC item fields that plain GeoJSON parsing
// does not surface (collection membership and asset hrefs)
type itemFieldsResults struct {
	Features []itemFields `json:"features"`
}

type itemFields struct {
	Collection string                `json:"collection"`
	Assets     map[string]assetField `json:"assets"`
}

type assetField struct {
	Href string `json:"href"`
}

// sasTokenResponse is the signing endpoint's token grant
type sasTokenResponse struct {
	Token  string `json:"token"`
	Expiry string `json:"msft:expiry"`
}

type catalogRequestInput struct {
	method      string
	inputURL    string // URL may be relative or absolute based on BaseCatalogURL
	body        []byte
	contentType string
}
