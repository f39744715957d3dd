package catalog

import (
	"html/template"

	"github.com/shopspring/decimal"
)

// PackageSize is a payment package expressed in OP CREDITS.
type PackageSize int

var allowedPackages = [...]PackageSize{5, 10, 25, 50}

// AllowedPackages returns the only package sizes a pay intent may use, in
// ascending order. The result is a copy.
func AllowedPackages() []PackageSize {
	out := make([]PackageSize, len(allowedPackages))
	copy(out, allowedPackages[:])
	return out
}

// Member describes the signed-in member shown in the shell chrome.
type Member struct {
	UserID           string
	DisplayName      string
	RankStatus       string
	VIPLabel         string
	AvatarURL        string
	ReferralLink     string
	PresentationPath string
}

// LeadershipRank is a rung on the ethical leadership ladder.
type LeadershipRank struct {
	Name    string
	Volume  int
	Points  int
	Virtues []string
}

// VipTier describes the requirements of a VIP level.
type VipTier struct {
	Level      string
	Directs    int
	TeamVolume int
	Points     int
}

// EarningPlan is a display-only row of the earning potential table.
type EarningPlan struct {
	Code           string
	MinPackage     PackageSize
	TotalPotential decimal.Decimal
}

// Badge counts a virtue earned by the member.
type Badge struct {
	Label string
	Count int
	Tone  string
}

// Progress is a current/target pair rendered as a bar.
type Progress struct {
	Current int
	Target  int
}

// Percent returns the completion ratio clamped to 0..100.
func (p Progress) Percent() int {
	if p.Target <= 0 || p.Current <= 0 {
		return 0
	}
	if p.Current >= p.Target {
		return 100
	}
	return p.Current * 100 / p.Target
}

// HonorRank is the member's current achievement panel.
type HonorRank struct {
	Current  string
	Showcase []string
	Volume   Progress
	Points   Progress
}

// LeaderboardEntry is a static row of the top leaders list.
type LeaderboardEntry struct {
	Seq      int
	UserID   string
	Rank     string
	VipLevel int
}

// LevelUnlock is a level of the referral bonus table. Unlocked is stored as
// display data and is not derived from any referral count.
type LevelUnlock struct {
	Level           int
	Bonus           string
	Network         int
	NetWorth        int
	ReferralsNeeded int
	Unlocked        bool
}

// VipGrowth drives the VIP growth dial.
type VipGrowth struct {
	Level       string
	Tracks      []int
	ActiveTrack int
}

// CashWallet is a fiat-denominated wallet balance.
type CashWallet struct {
	Label    string
	Currency string
	Balance  decimal.Decimal
	Note     string
}

// TokenWallet holds OPPERKS and OP CREDITS balances.
type TokenWallet struct {
	Label        string
	TokenBalance decimal.Decimal
	TokenUnit    string
	PointsLabel  string
	CreditAmount decimal.Decimal
	Note         string
}

// WalletSummary groups the member's wallets.
type WalletSummary struct {
	Main  CashWallet
	Topup CashWallet
	Token TokenWallet
}

// Metric is a labelled figure on a stat card.
type Metric struct {
	Label string
	Value string
	Icon  string
	Tone  string
}

// GenealogyLevel counts members at a network depth.
type GenealogyLevel struct {
	Level   int
	Members int
}

// Genealogy is the static network snapshot.
type Genealogy struct {
	Depth  int
	Levels []GenealogyLevel
}

// Notes holds sanitised HTML rendered from the markdown copy in the catalog.
type Notes struct {
	PaySteps     template.HTML
	Cheatsheet   template.HTML
	Genealogy    template.HTML
	Overview     template.HTML
	Honors       template.HTML
	Presentation template.HTML
}

// Catalog is the full set of display data for the dashboard.
type Catalog struct {
	Member          Member
	LeadershipRanks []LeadershipRank
	VipTiers        []VipTier
	EarningPlans    []EarningPlan
	Badges          []Badge
	HonorRank       HonorRank
	Leaderboard     []LeaderboardEntry
	Levels          []LevelUnlock
	VipGrowth       VipGrowth
	Wallet          WalletSummary
	HeadlineStats   []Metric
	Contributions   []Metric
	Circle          []Metric
	ExtendedCircle  []Metric
	Genealogy       Genealogy
	Notes           Notes
}
