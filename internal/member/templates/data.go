package templates

import (
	"net/url"
	"strconv"

	"finitefield.org/opai-member/internal/member/catalog"
	"finitefield.org/opai-member/internal/member/notify"
	"finitefield.org/opai-member/internal/member/section"
	"finitefield.org/opai-member/internal/member/templates/helpers"
)

// visibleLevels is how many level-unlock tiles the dashboard shows.
const visibleLevels = 4

// NavLink is a rendered sidebar entry.
type NavLink struct {
	Label  string
	Path   string
	Icon   string
	Active bool
}

// Toast is a rendered notice.
type Toast struct {
	ID          string
	Title       string
	Description string
	Severity    string
}

// Shell carries the chrome shared by every page.
type Shell struct {
	Title        string
	Subtitle     string
	Section      string
	Nav          []NavLink
	MenuOpen     bool
	MenuOpenURL  string
	MenuCloseURL string
	Member       catalog.Member
	CSRFToken    string
	Environment  string
	Toasts       []Toast
}

// PageData is the full payload for a section page.
type PageData struct {
	Shell
	Catalog *catalog.Catalog
	Plans   []PlanView
	Levels  []catalog.LevelUnlock
	Wallets WalletView
	Leaders LeaderboardView
	Pay     *PayForm
	Allowed string
}

// PlanView is an earning plan with its potential pre-formatted.
type PlanView struct {
	Code      string
	Min       int
	Potential string
}

// WalletView holds formatted wallet balances.
type WalletView struct {
	Cash  []CashWalletView
	Token TokenWalletView
}

// CashWalletView is a formatted fiat wallet card.
type CashWalletView struct {
	Label    string
	Currency string
	Balance  string
	Note     string
}

// TokenWalletView is the formatted token wallet card.
type TokenWalletView struct {
	Label        string
	TokenBalance string
	TokenUnit    string
	PointsLabel  string
	Credits      string
	Note         string
}

// LeaderboardView is the top-leaders panel.
type LeaderboardView struct {
	CountLabel string
	Entries    []catalog.LeaderboardEntry
}

// PayForm is the state of a pay-by-QR or pay-by-topup form.
type PayForm struct {
	Flow        string
	Action      string
	Title       string
	SubmitLabel string
	Amount      string
	Packages    []PackageOption
}

// PackageOption is a quick-pick link that prefills the amount.
type PackageOption struct {
	Size     int
	Label    string
	URL      string
	Selected bool
}

// PageOptions describes the request-scoped state of a page.
type PageOptions struct {
	Section     section.Key
	MenuOpen    bool
	CSRFToken   string
	Environment string
	Notices     []notify.Notice
	// PayAmount is the raw amount echoed into the pay form on qr and tether.
	PayAmount string
}

// BuildPageData prepares the template payload for a section page.
func BuildPageData(c *catalog.Catalog, opts PageOptions) PageData {
	key := section.Resolve("", opts.Section)
	data := PageData{
		Shell:   buildShell(c, key, opts),
		Catalog: c,
		Plans:   planViews(c),
		Levels:  c.VisibleLevels(visibleLevels),
		Wallets: walletView(c),
		Leaders: leaderboardView(c),
		Allowed: helpers.JoinInts(allowedSizes()),
	}
	if key == section.QR || key == section.Tether {
		data.Pay = payForm(key, opts.PayAmount)
	}
	return data
}

// NotFoundData is the payload of the not-found view.
type NotFoundData struct {
	Shell
	Path string
}

// BuildNotFoundData prepares the not-found view. No nav item is active.
func BuildNotFoundData(c *catalog.Catalog, path string, opts PageOptions) NotFoundData {
	shell := buildShell(c, "", opts)
	shell.Title = "Page not found"
	shell.Subtitle = ""
	shell.Section = "notfound"
	shell.MenuOpenURL = "?menu=open"
	shell.MenuCloseURL = "?"
	return NotFoundData{Shell: shell, Path: path}
}

// ToastsFromNotices converts notices into their rendered form.
func ToastsFromNotices(notices []notify.Notice) []Toast {
	out := make([]Toast, 0, len(notices))
	for _, n := range notices {
		severity := n.Severity
		if severity == "" {
			severity = notify.SeverityDefault
		}
		out = append(out, Toast{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			Severity:    string(severity),
		})
	}
	return out
}

func buildShell(c *catalog.Catalog, key section.Key, opts PageOptions) Shell {
	active := key
	if active == "" {
		active = section.Dashboard
	}
	nav := section.Nav()
	links := make([]NavLink, 0, len(nav))
	for _, item := range nav {
		links = append(links, NavLink{
			Label:  item.Label,
			Path:   item.Path,
			Icon:   item.Icon,
			Active: item.Section == key,
		})
	}

	var member catalog.Member
	if c != nil {
		member = c.Member
	}

	return Shell{
		Title:        active.Title(),
		Subtitle:     active.Subtitle(),
		Section:      string(active),
		Nav:          links,
		MenuOpen:     opts.MenuOpen,
		MenuOpenURL:  active.Path() + "?menu=open",
		MenuCloseURL: active.Path(),
		Member:       member,
		CSRFToken:    opts.CSRFToken,
		Environment:  opts.Environment,
		Toasts:       ToastsFromNotices(opts.Notices),
	}
}

func planViews(c *catalog.Catalog) []PlanView {
	if c == nil {
		return nil
	}
	out := make([]PlanView, 0, len(c.EarningPlans))
	for _, p := range c.EarningPlans {
		out = append(out, PlanView{
			Code:      p.Code,
			Min:       int(p.MinPackage),
			Potential: helpers.Whole(p.TotalPotential),
		})
	}
	return out
}

func walletView(c *catalog.Catalog) WalletView {
	if c == nil {
		return WalletView{}
	}
	w := c.Wallet
	view := WalletView{
		Token: TokenWalletView{
			Label:        w.Token.Label,
			TokenBalance: helpers.Whole(w.Token.TokenBalance),
			TokenUnit:    w.Token.TokenUnit,
			PointsLabel:  w.Token.PointsLabel,
			Credits:      helpers.Whole(w.Token.CreditAmount),
			Note:         w.Token.Note,
		},
	}
	for _, cash := range []catalog.CashWallet{w.Main, w.Topup} {
		view.Cash = append(view.Cash, CashWalletView{
			Label:    cash.Label,
			Currency: cash.Currency,
			Balance:  helpers.Money(cash.Currency, cash.Balance),
			Note:     cash.Note,
		})
	}
	return view
}

func leaderboardView(c *catalog.Catalog) LeaderboardView {
	if c == nil {
		return LeaderboardView{CountLabel: "0 Members"}
	}
	return LeaderboardView{
		CountLabel: strconv.Itoa(len(c.Leaderboard)) + " Members",
		Entries:    c.Leaderboard,
	}
}

func payForm(key section.Key, amount string) *PayForm {
	form := &PayForm{
		Flow:   string(key),
		Action: key.Path(),
		Title:  key.Title(),
		Amount: amount,
	}
	if key == section.QR {
		form.SubmitLabel = "Submit QR intent"
	} else {
		form.SubmitLabel = "Submit Topup intent"
	}
	for _, size := range allowedSizes() {
		q := url.Values{"amount": []string{strconv.Itoa(size)}}
		form.Packages = append(form.Packages, PackageOption{
			Size:     size,
			Label:    strconv.Itoa(size) + " OP CREDITS",
			URL:      key.Path() + "?" + q.Encode(),
			Selected: amount == strconv.Itoa(size),
		})
	}
	return form
}

func allowedSizes() []int {
	sizes := catalog.AllowedPackages()
	out := make([]int, 0, len(sizes))
	for _, size := range sizes {
		out = append(out, int(size))
	}
	return out
}
