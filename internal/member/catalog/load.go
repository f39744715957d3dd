package catalog

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

type fileCatalog struct {
	Member struct {
		UserID           string `yaml:"user_id"`
		DisplayName      string `yaml:"display_name"`
		RankStatus       string `yaml:"rank_status"`
		VIPLabel         string `yaml:"vip_label"`
		AvatarURL        string `yaml:"avatar_url"`
		ReferralLink     string `yaml:"referral_link"`
		PresentationPath string `yaml:"presentation_path"`
	} `yaml:"member"`
	LeadershipRanks []struct {
		Name    string   `yaml:"name"`
		Volume  int      `yaml:"volume"`
		Points  int      `yaml:"points"`
		Virtues []string `yaml:"virtues"`
	} `yaml:"leadership_ranks"`
	VipTiers []struct {
		Level      string `yaml:"level"`
		Directs    int    `yaml:"directs"`
		TeamVolume int    `yaml:"team_volume"`
		Points     int    `yaml:"points"`
	} `yaml:"vip_tiers"`
	EarningPlans []struct {
		Code           string `yaml:"code"`
		MinPackage     int    `yaml:"min_package"`
		TotalPotential string `yaml:"total_potential"`
	} `yaml:"earning_plans"`
	Badges []struct {
		Label string `yaml:"label"`
		Count int    `yaml:"count"`
		Tone  string `yaml:"tone"`
	} `yaml:"badges"`
	HonorRank struct {
		Current  string       `yaml:"current"`
		Showcase []string     `yaml:"showcase"`
		Volume   fileProgress `yaml:"volume"`
		Points   fileProgress `yaml:"points"`
	} `yaml:"honor_rank"`
	Leaderboard []struct {
		Seq      int    `yaml:"seq"`
		UserID   string `yaml:"user_id"`
		Rank     string `yaml:"rank"`
		VipLevel int    `yaml:"vip_level"`
	} `yaml:"leaderboard"`
	Levels []struct {
		Level           int    `yaml:"level"`
		Bonus           string `yaml:"bonus"`
		Network         int    `yaml:"network"`
		NetWorth        int    `yaml:"net_worth"`
		ReferralsNeeded int    `yaml:"referrals_needed"`
		Unlocked        bool   `yaml:"unlocked"`
	} `yaml:"levels"`
	VipGrowth struct {
		Level       string `yaml:"level"`
		Tracks      []int  `yaml:"tracks"`
		ActiveTrack int    `yaml:"active_track"`
	} `yaml:"vip_growth"`
	Wallet struct {
		Main  fileCashWallet `yaml:"main"`
		Topup fileCashWallet `yaml:"topup"`
		Token struct {
			Label        string `yaml:"label"`
			TokenBalance int64  `yaml:"token_balance"`
			TokenUnit    string `yaml:"token_unit"`
			PointsLabel  string `yaml:"points_label"`
			CreditAmount int64  `yaml:"credit_amount"`
			Note         string `yaml:"note"`
		} `yaml:"token"`
	} `yaml:"wallet"`
	Stats struct {
		Headline      []fileMetric `yaml:"headline"`
		Contributions []fileMetric `yaml:"contributions"`
	} `yaml:"stats"`
	Circle         []fileMetric `yaml:"circle"`
	ExtendedCircle []fileMetric `yaml:"extended_circle"`
	Genealogy      struct {
		Depth  int `yaml:"depth"`
		Levels []struct {
			Level   int `yaml:"level"`
			Members int `yaml:"members"`
		} `yaml:"levels"`
	} `yaml:"genealogy"`
	Notes struct {
		PaySteps     string `yaml:"pay_steps"`
		Cheatsheet   string `yaml:"cheatsheet"`
		Genealogy    string `yaml:"genealogy"`
		Overview     string `yaml:"overview"`
		Honors       string `yaml:"honors"`
		Presentation string `yaml:"presentation"`
	} `yaml:"notes"`
}

type fileProgress struct {
	Current int `yaml:"current"`
	Target  int `yaml:"target"`
}

type fileCashWallet struct {
	Label    string `yaml:"label"`
	Currency string `yaml:"currency"`
	Balance  string `yaml:"balance"`
	Note     string `yaml:"note"`
}

type fileMetric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Icon  string `yaml:"icon"`
	Tone  string `yaml:"tone"`
}

// Embedded decodes the catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var raw fileCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	return raw.toCatalog()
}

func (f fileCatalog) toCatalog() (*Catalog, error) {
	c := &Catalog{
		Member: Member{
			UserID:           f.Member.UserID,
			DisplayName:      f.Member.DisplayName,
			RankStatus:       f.Member.RankStatus,
			VIPLabel:         f.Member.VIPLabel,
			AvatarURL:        f.Member.AvatarURL,
			ReferralLink:     f.Member.ReferralLink,
			PresentationPath: f.Member.PresentationPath,
		},
		HonorRank: HonorRank{
			Current:  f.HonorRank.Current,
			Showcase: append([]string(nil), f.HonorRank.Showcase...),
			Volume:   Progress(f.HonorRank.Volume),
			Points:   Progress(f.HonorRank.Points),
		},
		VipGrowth: VipGrowth{
			Level:       f.VipGrowth.Level,
			Tracks:      append([]int(nil), f.VipGrowth.Tracks...),
			ActiveTrack: f.VipGrowth.ActiveTrack,
		},
		HeadlineStats:  toMetrics(f.Stats.Headline),
		Contributions:  toMetrics(f.Stats.Contributions),
		Circle:         toMetrics(f.Circle),
		ExtendedCircle: toMetrics(f.ExtendedCircle),
		Genealogy:      Genealogy{Depth: f.Genealogy.Depth},
	}

	for _, r := range f.LeadershipRanks {
		c.LeadershipRanks = append(c.LeadershipRanks, LeadershipRank{
			Name:    r.Name,
			Volume:  r.Volume,
			Points:  r.Points,
			Virtues: append([]string(nil), r.Virtues...),
		})
	}
	for _, t := range f.VipTiers {
		c.VipTiers = append(c.VipTiers, VipTier(t))
	}
	for _, p := range f.EarningPlans {
		total, err := decimal.NewFromString(p.TotalPotential)
		if err != nil {
			return nil, fmt.Errorf("catalog: earning plan %s: %w", p.Code, err)
		}
		c.EarningPlans = append(c.EarningPlans, EarningPlan{
			Code:           p.Code,
			MinPackage:     PackageSize(p.MinPackage),
			TotalPotential: total,
		})
	}
	for _, b := range f.Badges {
		c.Badges = append(c.Badges, Badge(b))
	}
	for _, e := range f.Leaderboard {
		c.Leaderboard = append(c.Leaderboard, LeaderboardEntry(e))
	}
	for _, l := range f.Levels {
		c.Levels = append(c.Levels, LevelUnlock(l))
	}
	for _, l := range f.Genealogy.Levels {
		c.Genealogy.Levels = append(c.Genealogy.Levels, GenealogyLevel(l))
	}

	var err error
	if c.Wallet.Main, err = f.Wallet.Main.toWallet(); err != nil {
		return nil, err
	}
	if c.Wallet.Topup, err = f.Wallet.Topup.toWallet(); err != nil {
		return nil, err
	}
	c.Wallet.Token = TokenWallet{
		Label:        f.Wallet.Token.Label,
		TokenBalance: decimal.NewFromInt(f.Wallet.Token.TokenBalance),
		TokenUnit:    f.Wallet.Token.TokenUnit,
		PointsLabel:  f.Wallet.Token.PointsLabel,
		CreditAmount: decimal.NewFromInt(f.Wallet.Token.CreditAmount),
		Note:         f.Wallet.Token.Note,
	}

	md := newMarkdownRenderer()
	if c.Notes.PaySteps, err = md.Render(f.Notes.PaySteps); err != nil {
		return nil, err
	}
	if c.Notes.Cheatsheet, err = md.Render(f.Notes.Cheatsheet); err != nil {
		return nil, err
	}
	if c.Notes.Genealogy, err = md.Render(f.Notes.Genealogy); err != nil {
		return nil, err
	}
	if c.Notes.Overview, err = md.Render(f.Notes.Overview); err != nil {
		return nil, err
	}
	if c.Notes.Honors, err = md.Render(f.Notes.Honors); err != nil {
		return nil, err
	}
	if c.Notes.Presentation, err = md.Render(f.Notes.Presentation); err != nil {
		return nil, err
	}

	return c, nil
}

func (w fileCashWallet) toWallet() (CashWallet, error) {
	balance, err := decimal.NewFromString(w.Balance)
	if err != nil {
		return CashWallet{}, fmt.Errorf("catalog: wallet %s balance: %w", w.Label, err)
	}
	return CashWallet{
		Label:    w.Label,
		Currency: w.Currency,
		Balance:  balance,
		Note:     w.Note,
	}, nil
}

func toMetrics(list []fileMetric) []Metric {
	out := make([]Metric, 0, len(list))
	for _, m := range list {
		out = append(out, Metric(m))
	}
	return out
}
