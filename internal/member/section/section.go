// Package section maps request paths onto the dashboard section being viewed.
package section

import "strings"

// Key identifies one of the dashboard views.
type Key string

const (
	Dashboard Key = "dashboard"
	Profile   Key = "profile"
	Stats     Key = "stats"
	Wallet    Key = "wallet"
	QR        Key = "qr"
	Tether    Key = "tether"
	Directs   Key = "directs"
	Team      Key = "team"
	Genealogy Key = "genealogy"
	Overview  Key = "overview"
)

// NavItem is a sidebar entry pointing at a section route.
type NavItem struct {
	Label   string
	Path    string
	Section Key
	Icon    string
}

type heading struct {
	title    string
	subtitle string
}

var headings = map[Key]heading{
	Dashboard: {title: "Dashboard"},
	Profile:   {title: "Profile", subtitle: "Your account, leadership badges and qualification targets."},
	Stats:     {title: "Stats", subtitle: "Performance snapshot across referrals, volume, and rewards."},
	Wallet:    {title: "Wallets", subtitle: "Track balances across your cash wallets and token holdings (OPPERKS / OP CREDITS)."},
	QR:        {title: "Pay by QR", subtitle: "Scan-to-pay instructions. Only valid packages are accepted."},
	Tether:    {title: "Pay by Topup", subtitle: "Send OP CREDITS using the package options listed."},
	Directs:   {title: "My Circle", subtitle: "Core circle performance from your personally invited members."},
	Team:      {title: "Extended Circle", subtitle: "Extended circle contributions and roles."},
	Genealogy: {title: "Genealogy", subtitle: "Visual network view so you can track who invited whom."},
	Overview:  {title: "Overview", subtitle: "High level metrics and plan comparisons."},
}

var nav = []NavItem{
	{Label: "Dashboard", Path: "/", Section: Dashboard, Icon: "layout-dashboard"},
	{Label: "Profile", Path: "/profile", Section: Profile, Icon: "users"},
	{Label: "Stats", Path: "/stats", Section: Stats, Icon: "trending-up"},
	{Label: "Wallets", Path: "/wallet", Section: Wallet, Icon: "wallet"},
	{Label: "Pay By QR", Path: "/qr", Section: QR, Icon: "zap"},
	{Label: "Pay By Topup", Path: "/tether", Section: Tether, Icon: "dollar-sign"},
	{Label: "My Circle", Path: "/directs", Section: Directs, Icon: "target"},
	{Label: "Extended Circle", Path: "/team", Section: Team, Icon: "users"},
	{Label: "Genealogy", Path: "/genealogy", Section: Genealogy, Icon: "trophy"},
	{Label: "Overview", Path: "/overview", Section: Overview, Icon: "bar-chart-3"},
}

var (
	byPath = make(map[string]Key, len(nav))
	byKey  = make(map[Key]NavItem, len(nav))
)

func init() {
	for _, item := range nav {
		byPath[item.Path] = item.Section
		byKey[item.Section] = item
	}
}

// Nav returns the sidebar items in display order.
func Nav() []NavItem {
	out := make([]NavItem, len(nav))
	copy(out, nav)
	return out
}

// Keys returns every section key in sidebar order.
func Keys() []Key {
	out := make([]Key, 0, len(nav))
	for _, item := range nav {
		out = append(out, item.Section)
	}
	return out
}

// Valid reports whether k is one of the known sections.
func (k Key) Valid() bool {
	_, ok := byKey[k]
	return ok
}

// Path returns the canonical route for the section, "/" for unknown keys.
func (k Key) Path() string {
	if item, ok := byKey[k]; ok {
		return item.Path
	}
	return "/"
}

// Title returns the section header title.
func (k Key) Title() string {
	if h, ok := headings[k]; ok {
		return h.title
	}
	return headings[Dashboard].title
}

// Subtitle returns the line shown under the section title, empty for the dashboard.
func (k Key) Subtitle() string {
	return headings[k].subtitle
}

// Lookup finds the section mounted at path.
func Lookup(path string) (Key, bool) {
	key, ok := byPath[normalizePath(path)]
	return key, ok
}

// Resolve returns the section to render. An explicit override wins, then the
// route table, then Dashboard. It never fails and keeps no state.
func Resolve(path string, override Key) Key {
	if override.Valid() {
		return override
	}
	if key, ok := Lookup(path); ok {
		return key
	}
	return Dashboard
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
