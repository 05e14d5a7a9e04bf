package model

import "time"

// PlayerRecord is the synthesized player profile. Every field is derived from
// the uid and a single timestamp snapshot.
type PlayerRecord struct {
	ID             int64        `json:"id"`
	SpecialCode    string       `json:"special_code"`
	Timestamp1     int64        `json:"timestamp1"`
	ValueA         int64        `json:"value_a"`
	StatusCode     int64        `json:"status_code"`
	SubType        int64        `json:"sub_type"`
	Version        int64        `json:"version"`
	Level          int64        `json:"level"`
	Flags          int64        `json:"flags"`
	WelcomeMessage string       `json:"welcome_message"`
	Region         string       `json:"region"`
	JSONMetadata   string       `json:"json_metadata"`
	BigNumbers     string       `json:"big_numbers"`
	Balance        int64        `json:"balance"`
	Score          int64        `json:"score"`
	Upgrades       int64        `json:"upgrades"`
	Achievements   int64        `json:"achievements"`
	TotalPlaytime  int64        `json:"total_playtime"`
	Energy         int64        `json:"energy"`
	Rank           int64        `json:"rank"`
	XP             int64        `json:"xp"`
	Timestamp2     int64        `json:"timestamp2"`
	ErrorCode      int64        `json:"error_code"`
	LastActive     int64        `json:"last_active"`
	GuildDetails   GuildDetails `json:"guild_details"`
	EmptyField     string       `json:"empty_field"`
}

type GuildDetails struct {
	Region        string `json:"region"`
	ClanID        int64  `json:"clan_id"`
	MembersOnline int64  `json:"members_online"`
	TotalMembers  int64  `json:"total_members"`
	Regional      int64  `json:"regional"`
	RewardTime    int64  `json:"reward_time"`
	ExpireTime    int64  `json:"expire_time"`
}

// PlayerDataResponse is the JSON projection returned by /player-data.
type PlayerDataResponse struct {
	PlayerRecord
	ProtoFieldsIncluded string `json:"proto_fields_included" example:"All fields from data.proto (1-49)"`
	Timestamp           int64  `json:"timestamp" example:"1760600000"`
	RequestRegion       string `json:"request_region" example:"NA"`
	Credit              string `json:"credit" example:"@Ujjaiwal"`
}

type EncryptionInfo struct {
	Algorithm string `json:"algorithm" example:"AES-CBC"`
	KeySize   int    `json:"key_size" example:"128"`
	Padding   string `json:"padding" example:"PKCS7"`
}

type EncryptedDataResponse struct {
	EncryptedData  string         `json:"encrypted_data" example:"9f86d081884c7d65..."`
	EncryptionInfo EncryptionInfo `json:"encryption_info"`
	Timestamp      int64          `json:"timestamp" example:"1760600000"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Invalid UID format"`
}

// AccessEntry is one audited request. UID and Region hold the raw query values.
type AccessEntry struct {
	RequestID string
	Endpoint  string
	UID       string
	Region    string
	Status    int
	Latency   time.Duration
	CreatedAt time.Time
}
