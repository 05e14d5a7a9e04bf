package profile

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Unix(1760600000, 0)

func TestBuild_UID42(t *testing.T) {
	rec := Build(42, fixedNow)
	require.NotNil(t, rec)

	assert.Equal(t, int64(42), rec.ID)
	assert.Equal(t, "SPECIAL_42", rec.SpecialCode)
	assert.Equal(t, int64(1760600000), rec.Timestamp1)
	assert.Equal(t, int64(142), rec.ValueA)
	assert.Equal(t, int64(400), rec.StatusCode)
	assert.Equal(t, int64(2), rec.SubType)
	assert.Equal(t, int64(1), rec.Version)
	assert.Equal(t, int64(52), rec.Level)
	assert.Equal(t, int64(2), rec.Flags)
	assert.Equal(t, "Welcome, Player 42!", rec.WelcomeMessage)
	assert.Equal(t, "NA", rec.Region)
	assert.Equal(t, `{"premium": false}`, rec.JSONMetadata)
	assert.Equal(t, "1000000,2000000,3000000", rec.BigNumbers)
	assert.Equal(t, int64(5042), rec.Balance)
	assert.Equal(t, int64(10042), rec.Score)
	assert.Equal(t, int64(7), rec.Upgrades)
	assert.Equal(t, int64(3), rec.Achievements)
	assert.Equal(t, int64(3642), rec.TotalPlaytime)
	assert.Equal(t, int64(50), rec.Energy)
	assert.Equal(t, int64(43), rec.Rank)
	assert.Equal(t, int64(1042), rec.XP)
	assert.Equal(t, int64(1760600000-86400), rec.Timestamp2)
	assert.Equal(t, int64(404), rec.ErrorCode)
	assert.Equal(t, int64(1760600000-3600*18), rec.LastActive)
	assert.Equal(t, "", rec.EmptyField)

	g := rec.GuildDetails
	assert.Equal(t, "NA", g.Region)
	assert.Equal(t, int64(1042), g.ClanID)
	assert.Equal(t, int64(5+12), g.MembersOnline)
	assert.Equal(t, int64(20+12), g.TotalMembers)
	assert.Equal(t, int64(0), g.Regional)
	assert.Equal(t, int64(1760600000+86400), g.RewardTime)
	assert.Equal(t, int64(1760600000+2592000), g.ExpireTime)
}

func TestBuild_FormulaFields(t *testing.T) {
	ids := []int64{0, 1, 2, 3, 7, 89, 90, 999, 1000, 4999, 5000, 86399, 86400, 123456789, math.MaxInt64 - 1000}

	for _, id := range ids {
		rec := Build(id, fixedNow)

		assert.Equal(t, id, rec.ID)
		assert.Equal(t, 10+id%90, rec.Level, "level for %d", id)
		assert.Equal(t, 100+id%50, rec.ValueA, "value_a for %d", id)
		assert.Equal(t, id%5, rec.SubType, "sub_type for %d", id)
		assert.Equal(t, 5000+id%5000, rec.Balance, "balance for %d", id)
		assert.Equal(t, 10000+id%10000, rec.Score, "score for %d", id)
		assert.Equal(t, 5+id%10, rec.Upgrades, "upgrades for %d", id)
		assert.Equal(t, 3+id%7, rec.Achievements, "achievements for %d", id)
		assert.Equal(t, 3600+id%86400, rec.TotalPlaytime, "total_playtime for %d", id)
		assert.Equal(t, 1+id%100, rec.Rank, "rank for %d", id)
		assert.Equal(t, 1000+id%9000, rec.XP, "xp for %d", id)
		assert.Equal(t, fixedNow.Unix()-3600*(id%24), rec.LastActive, "last_active for %d", id)
		assert.Equal(t, 1000+id, rec.GuildDetails.ClanID, "clan_id for %d", id)
		assert.Equal(t, 5+id%15, rec.GuildDetails.MembersOnline, "members_online for %d", id)
		assert.Equal(t, 20+id%30, rec.GuildDetails.TotalMembers, "total_members for %d", id)
	}
}

func TestBuild_FlagsAndRegionFollowParity(t *testing.T) {
	for id := int64(0); id < 20; id++ {
		rec := Build(id, fixedNow)
		if id%2 == 1 {
			assert.Equal(t, int64(5), rec.Flags)
			assert.Equal(t, "IND", rec.Region)
			assert.Equal(t, int64(1), rec.GuildDetails.Regional)
		} else {
			assert.Equal(t, int64(2), rec.Flags)
			assert.Equal(t, "NA", rec.Region)
			assert.Equal(t, int64(0), rec.GuildDetails.Regional)
		}
		assert.Equal(t, rec.Region, rec.GuildDetails.Region)
	}
}

func TestBuild_StatusAndErrorCodesFollowThirds(t *testing.T) {
	for id := int64(0); id < 30; id++ {
		rec := Build(id, fixedNow)
		if id%3 == 0 {
			assert.Equal(t, int64(400), rec.StatusCode)
			assert.Equal(t, int64(404), rec.ErrorCode)
			assert.Equal(t, int64(50), rec.Energy)
			assert.Equal(t, `{"premium": false}`, rec.JSONMetadata)
		} else {
			assert.Equal(t, int64(200), rec.StatusCode)
			assert.Equal(t, int64(0), rec.ErrorCode)
			assert.Equal(t, int64(100), rec.Energy)
			assert.Equal(t, `{"premium": true}`, rec.JSONMetadata)
		}
	}
}

func TestBuild_NegativeIDUsesFlooredModulo(t *testing.T) {
	rec := Build(-1, fixedNow)

	assert.Equal(t, "SPECIAL_999", rec.SpecialCode)
	assert.Equal(t, int64(10+89), rec.Level)
	assert.Equal(t, int64(4), rec.SubType)
	assert.Equal(t, int64(5), rec.Flags)
	assert.Equal(t, "IND", rec.Region)
	assert.Equal(t, int64(200), rec.StatusCode)
	assert.Equal(t, "Welcome, Player -1!", rec.WelcomeMessage)
	assert.Equal(t, fixedNow.Unix()-3600*23, rec.LastActive)
	assert.Equal(t, int64(999), rec.GuildDetails.ClanID)
}

func TestBuild_TimestampsShareOneSnapshot(t *testing.T) {
	rec := Build(7, fixedNow)
	ts := rec.Timestamp1

	assert.Equal(t, ts-86400, rec.Timestamp2)
	assert.Equal(t, ts+86400, rec.GuildDetails.RewardTime)
	assert.Equal(t, ts+2592000, rec.GuildDetails.ExpireTime)
}

func TestBuild_IsPure(t *testing.T) {
	assert.Equal(t, Build(31337, fixedNow), Build(31337, fixedNow))
}

func TestMod(t *testing.T) {
	cases := []struct {
		a, m, want int64
	}{
		{0, 3, 0},
		{5, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
		{-1000, 1000, 0},
		{-1001, 1000, 999},
		{math.MinInt64, 2, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mod(tc.a, tc.m), "mod(%d, %d)", tc.a, tc.m)
	}
}
