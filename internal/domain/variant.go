package domain

import (
	"fmt"
	"strings"
)

// Variant identifies which catalog an item or preference key belongs to.
type Variant string

const (
	VariantService Variant = "service"
	VariantStartup Variant = "startup"
)

// ParseVariant accepts the variant name case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantService:
		return VariantService, nil
	case VariantStartup, "":
		return VariantStartup, nil
	default:
		return "", fmt.Errorf("unknown variant %q", s)
	}
}

// Keys names the storage keys owned by each preference store.
// No two stores share a key, and the two variants never share keys.
type Keys struct {
	Favorites   string
	Recent      string
	Read        string
	Submissions string
}

// StorageKeys returns the keys for a variant. The startup and service
// favorites keys keep the names the browser apps used.
func StorageKeys(v Variant) Keys {
	if v == VariantService {
		return Keys{
			Favorites:   "serviq_favorites",
			Recent:      "serviq_recent",
			Read:        "serviq_notif_read",
			Submissions: "serviq_user_listings",
		}
	}
	return Keys{
		Favorites:   "lb_bookmarks",
		Recent:      "lb_recent",
		Read:        "lb_notif_read",
		Submissions: "lb_user_listings",
	}
}

// Namespaced prefixes every key so several users can share one backend.
// Format: user:{ns}:{key}
func (k Keys) Namespaced(ns string) Keys {
	if ns == "" {
		return k
	}
	prefix := fmt.Sprintf("user:%s:", ns)
	return Keys{
		Favorites:   prefix + k.Favorites,
		Recent:      prefix + k.Recent,
		Read:        prefix + k.Read,
		Submissions: prefix + k.Submissions,
	}
}
