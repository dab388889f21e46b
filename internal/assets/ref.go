package assets

import "strings"

// RefKind separates the two identities an asset reference can have. Durable
// refs point at a remotely stored object and survive restarts; ephemeral refs
// are process-local handles that die with the session and can never be
// deleted remotely.
type RefKind int

const (
	RefNone RefKind = iota
	RefDurable
	RefEphemeral
)

const ephemeralScheme = "local://"

// AssetRef is an opaque reference to a stored image.
type AssetRef struct {
	Kind RefKind
	// URL is the remote location for durable refs, or "local://<handle>"
	// for ephemeral ones.
	URL string
}

// ParseRef classifies a persisted reference string.
func ParseRef(s string) AssetRef {
	if s == "" {
		return AssetRef{}
	}
	if strings.HasPrefix(s, ephemeralScheme) {
		return AssetRef{Kind: RefEphemeral, URL: s}
	}
	return AssetRef{Kind: RefDurable, URL: s}
}

func ephemeralRef(handle string) AssetRef {
	return AssetRef{Kind: RefEphemeral, URL: ephemeralScheme + handle}
}

func (r AssetRef) String() string {
	return r.URL
}

func (r AssetRef) IsZero() bool {
	return r.Kind == RefNone
}

// Handle returns the process-local handle of an ephemeral ref.
func (r AssetRef) Handle() string {
	return strings.TrimPrefix(r.URL, ephemeralScheme)
}
