// Package codec encodes player records in protobuf wire format.
//
// Field numbers (message response):
//
//	 1 id               int64      20 balance         int64
//	 2 special_code     string     22 score           int64
//	 3 timestamp1       int64      33 upgrades        int64
//	 4 value_a          int64      35 achievements    int64
//	 5 status_code      int64      36 total_playtime  int64
//	 6 sub_type         int64      37 energy          int64
//	 7 version          int64      38 rank            int64
//	 8 level            int64      39 xp              int64
//	 9 flags            int64      40 timestamp2      int64
//	12 welcome_message  string     41 error_code      int64
//	13 region           string     44 last_active     int64
//	14 json_metadata    string     47 guild_details   GuildDetails
//	15 big_numbers      string     49 empty_field     string
//
// GuildDetails: 1 region string, 2 clan_id, 3 members_online,
// 4 total_members, 5 regional, 6 reward_time, 7 expire_time (all int64).
//
// Encoding follows proto3: zero values are not written and fields are emitted
// in ascending field-number order.
package codec

import (
	"fmt"

	"player-data-api/internal/model"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldID             protowire.Number = 1
	fieldSpecialCode    protowire.Number = 2
	fieldTimestamp1     protowire.Number = 3
	fieldValueA         protowire.Number = 4
	fieldStatusCode     protowire.Number = 5
	fieldSubType        protowire.Number = 6
	fieldVersion        protowire.Number = 7
	fieldLevel          protowire.Number = 8
	fieldFlags          protowire.Number = 9
	fieldWelcomeMessage protowire.Number = 12
	fieldRegion         protowire.Number = 13
	fieldJSONMetadata   protowire.Number = 14
	fieldBigNumbers     protowire.Number = 15
	fieldBalance        protowire.Number = 20
	fieldScore          protowire.Number = 22
	fieldUpgrades       protowire.Number = 33
	fieldAchievements   protowire.Number = 35
	fieldTotalPlaytime  protowire.Number = 36
	fieldEnergy         protowire.Number = 37
	fieldRank           protowire.Number = 38
	fieldXP             protowire.Number = 39
	fieldTimestamp2     protowire.Number = 40
	fieldErrorCode      protowire.Number = 41
	fieldLastActive     protowire.Number = 44
	fieldGuildDetails   protowire.Number = 47
	fieldEmptyField     protowire.Number = 49
)

const (
	guildRegion        protowire.Number = 1
	guildClanID        protowire.Number = 2
	guildMembersOnline protowire.Number = 3
	guildTotalMembers  protowire.Number = 4
	guildRegional      protowire.Number = 5
	guildRewardTime    protowire.Number = 6
	guildExpireTime    protowire.Number = 7
)

// Marshal encodes rec in protobuf wire format. The output is deterministic.
func Marshal(rec *model.PlayerRecord) []byte {
	var b []byte

	b = appendInt(b, fieldID, rec.ID)
	b = appendString(b, fieldSpecialCode, rec.SpecialCode)
	b = appendInt(b, fieldTimestamp1, rec.Timestamp1)
	b = appendInt(b, fieldValueA, rec.ValueA)
	b = appendInt(b, fieldStatusCode, rec.StatusCode)
	b = appendInt(b, fieldSubType, rec.SubType)
	b = appendInt(b, fieldVersion, rec.Version)
	b = appendInt(b, fieldLevel, rec.Level)
	b = appendInt(b, fieldFlags, rec.Flags)
	b = appendString(b, fieldWelcomeMessage, rec.WelcomeMessage)
	b = appendString(b, fieldRegion, rec.Region)
	b = appendString(b, fieldJSONMetadata, rec.JSONMetadata)
	b = appendString(b, fieldBigNumbers, rec.BigNumbers)
	b = appendInt(b, fieldBalance, rec.Balance)
	b = appendInt(b, fieldScore, rec.Score)
	b = appendInt(b, fieldUpgrades, rec.Upgrades)
	b = appendInt(b, fieldAchievements, rec.Achievements)
	b = appendInt(b, fieldTotalPlaytime, rec.TotalPlaytime)
	b = appendInt(b, fieldEnergy, rec.Energy)
	b = appendInt(b, fieldRank, rec.Rank)
	b = appendInt(b, fieldXP, rec.XP)
	b = appendInt(b, fieldTimestamp2, rec.Timestamp2)
	b = appendInt(b, fieldErrorCode, rec.ErrorCode)
	b = appendInt(b, fieldLastActive, rec.LastActive)

	b = protowire.AppendTag(b, fieldGuildDetails, protowire.BytesType)
	b = protowire.AppendBytes(b, marshalGuild(&rec.GuildDetails))

	b = appendString(b, fieldEmptyField, rec.EmptyField)

	return b
}

func marshalGuild(g *model.GuildDetails) []byte {
	var b []byte
	b = appendString(b, guildRegion, g.Region)
	b = appendInt(b, guildClanID, g.ClanID)
	b = appendInt(b, guildMembersOnline, g.MembersOnline)
	b = appendInt(b, guildTotalMembers, g.TotalMembers)
	b = appendInt(b, guildRegional, g.Regional)
	b = appendInt(b, guildRewardTime, g.RewardTime)
	b = appendInt(b, guildExpireTime, g.ExpireTime)
	return b
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// Unmarshal decodes a record produced by Marshal. Unknown fields are skipped.
func Unmarshal(b []byte) (*model.PlayerRecord, error) {
	rec := &model.PlayerRecord{}

	ints := map[protowire.Number]*int64{
		fieldID:            &rec.ID,
		fieldTimestamp1:    &rec.Timestamp1,
		fieldValueA:        &rec.ValueA,
		fieldStatusCode:    &rec.StatusCode,
		fieldSubType:       &rec.SubType,
		fieldVersion:       &rec.Version,
		fieldLevel:         &rec.Level,
		fieldFlags:         &rec.Flags,
		fieldBalance:       &rec.Balance,
		fieldScore:         &rec.Score,
		fieldUpgrades:      &rec.Upgrades,
		fieldAchievements:  &rec.Achievements,
		fieldTotalPlaytime: &rec.TotalPlaytime,
		fieldEnergy:        &rec.Energy,
		fieldRank:          &rec.Rank,
		fieldXP:            &rec.XP,
		fieldTimestamp2:    &rec.Timestamp2,
		fieldErrorCode:     &rec.ErrorCode,
		fieldLastActive:    &rec.LastActive,
	}
	strs := map[protowire.Number]*string{
		fieldSpecialCode:    &rec.SpecialCode,
		fieldWelcomeMessage: &rec.WelcomeMessage,
		fieldRegion:         &rec.Region,
		fieldJSONMetadata:   &rec.JSONMetadata,
		fieldBigNumbers:     &rec.BigNumbers,
		fieldEmptyField:     &rec.EmptyField,
	}

	err := walk(b, ints, strs, func(num protowire.Number, v []byte) (bool, error) {
		if num != fieldGuildDetails {
			return false, nil
		}
		g, err := unmarshalGuild(v)
		if err != nil {
			return true, fmt.Errorf("guild_details: %w", err)
		}
		rec.GuildDetails = *g
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func unmarshalGuild(b []byte) (*model.GuildDetails, error) {
	g := &model.GuildDetails{}
	ints := map[protowire.Number]*int64{
		guildClanID:        &g.ClanID,
		guildMembersOnline: &g.MembersOnline,
		guildTotalMembers:  &g.TotalMembers,
		guildRegional:      &g.Regional,
		guildRewardTime:    &g.RewardTime,
		guildExpireTime:    &g.ExpireTime,
	}
	strs := map[protowire.Number]*string{
		guildRegion: &g.Region,
	}
	if err := walk(b, ints, strs, nil); err != nil {
		return nil, err
	}
	return g, nil
}

// walk decodes every field of b into ints and strs. Length-delimited fields
// that are not strings are offered to nested; fields nobody claims are skipped.
func walk(
	b []byte,
	ints map[protowire.Number]*int64,
	strs map[protowire.Number]*string,
	nested func(num protowire.Number, v []byte) (bool, error),
) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", model.ErrMalformedPayload, protowire.ParseError(n))
		}
		b = b[n:]

		if dst, ok := ints[num]; ok {
			if typ != protowire.VarintType {
				return fmt.Errorf("%w: field %d: unexpected wire type %d", model.ErrMalformedPayload, num, typ)
			}
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", model.ErrMalformedPayload, num, protowire.ParseError(n))
			}
			*dst = int64(v)
			b = b[n:]
			continue
		}

		if dst, ok := strs[num]; ok {
			if typ != protowire.BytesType {
				return fmt.Errorf("%w: field %d: unexpected wire type %d", model.ErrMalformedPayload, num, typ)
			}
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", model.ErrMalformedPayload, num, protowire.ParseError(n))
			}
			*dst = v
			b = b[n:]
			continue
		}

		if nested != nil && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", model.ErrMalformedPayload, num, protowire.ParseError(n))
			}
			handled, err := nested(num, v)
			if err != nil {
				return err
			}
			if handled {
				b = b[n:]
				continue
			}
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return fmt.Errorf("%w: field %d: %v", model.ErrMalformedPayload, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}
