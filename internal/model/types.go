package model

import "math"

const (
	ProtoFieldsIncluded = "All fields from data.proto (1-49)"
	Credit              = "@Ujjaiwal"

	AlgorithmAESCBC = "AES-CBC"
	KeySizeBits     = 128
	PaddingPKCS7    = "PKCS7"
)

// MaxUID is the largest uid whose derived clan id still fits in an int64.
const MaxUID = math.MaxInt64 - 1000

type Endpoint string

const (
	EndpointPlayerData    Endpoint = "/player-data"
	EndpointEncryptedData Endpoint = "/encrypted-data"
)

func (e Endpoint) String() string {
	return string(e)
}

// NewEncryptionInfo describes the cipher applied to /encrypted-data payloads.
func NewEncryptionInfo() EncryptionInfo {
	return EncryptionInfo{
		Algorithm: AlgorithmAESCBC,
		KeySize:   KeySizeBits,
		Padding:   PaddingPKCS7,
	}
}
