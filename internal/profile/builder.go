// Package profile synthesizes player records from a uid.
package profile

import (
	"strconv"
	"time"

	"player-data-api/internal/model"
)

const (
	day   = 86400
	hour  = 3600
	month = 30 * day

	bigNumbers     = "1000000,2000000,3000000"
	premiumTrue    = `{"premium": true}`
	premiumFalse   = `{"premium": false}`
	regionOdd      = "IND"
	regionEven     = "NA"
	flagsOdd       = 0x1 | 0x4
	flagsEven      = 0x2
	recordVersion  = 1
	specialPrefix  = "SPECIAL_"
	welcomePrefix  = "Welcome, Player "
	welcomeSuffix  = "!"
	statusOK       = 200
	statusBad      = 400
	errorNotFound  = 404
	energyFull     = 100
	energyDepleted = 50
)

// Build derives the full record for id. All time-based fields come from the
// single snapshot now.
func Build(id int64, now time.Time) *model.PlayerRecord {
	t := now.Unix()

	odd := mod(id, 2) != 0
	notThird := mod(id, 3) != 0

	rec := &model.PlayerRecord{
		ID:             id,
		SpecialCode:    specialPrefix + strconv.FormatInt(mod(id, 1000), 10),
		Timestamp1:     t,
		ValueA:         100 + mod(id, 50),
		StatusCode:     pick(notThird, statusOK, statusBad),
		SubType:        mod(id, 5),
		Version:        recordVersion,
		Level:          10 + mod(id, 90),
		Flags:          pick(odd, flagsOdd, flagsEven),
		WelcomeMessage: welcomePrefix + strconv.FormatInt(id, 10) + welcomeSuffix,
		Region:         regionEven,
		JSONMetadata:   premiumFalse,
		BigNumbers:     bigNumbers,
		Balance:        5000 + mod(id, 5000),
		Score:          10000 + mod(id, 10000),
		Upgrades:       5 + mod(id, 10),
		Achievements:   3 + mod(id, 7),
		TotalPlaytime:  hour + mod(id, day),
		Energy:         pick(notThird, energyFull, energyDepleted),
		Rank:           1 + mod(id, 100),
		XP:             1000 + mod(id, 9000),
		Timestamp2:     t - day,
		ErrorCode:      pick(notThird, 0, errorNotFound),
		LastActive:     t - hour*mod(id, 24),
		EmptyField:     "",
	}
	if odd {
		rec.Region = regionOdd
	}
	if notThird {
		rec.JSONMetadata = premiumTrue
	}

	rec.GuildDetails = model.GuildDetails{
		Region:        rec.Region,
		ClanID:        1000 + id,
		MembersOnline: 5 + mod(id, 15),
		TotalMembers:  20 + mod(id, 30),
		Regional:      pick(odd, 1, 0),
		RewardTime:    t + day,
		ExpireTime:    t + month,
	}

	return rec
}

// mod is floored modulo: for the positive divisors used here the result is
// always in [0, m).
func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func pick(cond bool, yes, no int64) int64 {
	if cond {
		return yes
	}
	return no
}
