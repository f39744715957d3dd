package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveRouteTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Key
	}{
		{"/", Dashboard},
		{"/profile", Profile},
		{"/stats", Stats},
		{"/wallet", Wallet},
		{"/qr", QR},
		{"/tether", Tether},
		{"/directs", Directs},
		{"/team", Team},
		{"/genealogy", Genealogy},
		{"/overview", Overview},
		{"/team/", Team},
		{"//wallet", Wallet},
		{"/qr?amount=5", QR},
		{"", Dashboard},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Resolve(tc.path, ""))
		})
	}
}

func TestResolveFallsBackToDashboard(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/unknown", "/profile/edit", "/QR", "settings"} {
		key := Resolve(path, "")
		require.Equal(t, Dashboard, key, "path %q", path)
		_, ok := Lookup(path)
		require.False(t, ok, "path %q must not be in the route table", path)
	}
}

func TestResolveOverrideWins(t *testing.T) {
	t.Parallel()

	require.Equal(t, Genealogy, Resolve("/wallet", Genealogy))
	require.Equal(t, Stats, Resolve("/does-not-exist", Stats))
	require.Equal(t, Wallet, Resolve("/wallet", Key("bogus")), "invalid override is ignored")
}

func TestResolveIsPure(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/", "/tether", "/nope"} {
		first := Resolve(path, "")
		second := Resolve(path, "")
		require.Equal(t, first, second)
	}
}

func TestNavCoversEveryKey(t *testing.T) {
	t.Parallel()

	items := Nav()
	require.Len(t, items, 10)
	seen := map[Key]bool{}
	for _, item := range items {
		require.True(t, item.Section.Valid())
		require.Equal(t, item.Path, item.Section.Path())
		got, ok := Lookup(item.Path)
		require.True(t, ok)
		require.Equal(t, item.Section, got)
		seen[item.Section] = true
	}
	require.Len(t, seen, 10)

	items[0].Label = "mutated"
	require.Equal(t, "Dashboard", Nav()[0].Label, "Nav must return a copy")
}

func TestHeadings(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Pay by QR", QR.Title())
	require.Equal(t, "Pay by Topup", Tether.Title())
	require.Equal(t, "Wallets", Wallet.Title())
	require.Empty(t, Dashboard.Subtitle())
	require.Equal(t, "Dashboard", Key("bogus").Title())

	for _, key := range Keys() {
		require.NotEmpty(t, key.Title(), "section %s", key)
	}
}
