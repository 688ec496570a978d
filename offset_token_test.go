package dbpager

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_OffsetToken_Decode(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedOffset int
		expectedEmpty  bool
		expectError    bool
	}{
		{
			name:          "zero empty",
			input:         "",
			expectedEmpty: true,
		},
		{
			name:          "zero encoded",
			input:         base64.RawURLEncoding.EncodeToString([]byte("0")),
			expectedEmpty: true,
		},
		{
			name:           "non-zero encoded",
			input:          base64.RawURLEncoding.EncodeToString([]byte("15")),
			expectedOffset: 15,
		},
		{
			name:        "not base64",
			input:       "***",
			expectError: true,
		},
		{
			name:        "not a number",
			input:       base64.RawURLEncoding.EncodeToString([]byte("abc")),
			expectError: true,
		},
		{
			name:        "negative offset",
			input:       base64.RawURLEncoding.EncodeToString([]byte("-4")),
			expectError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := DecodeOffsetToken(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expectedEmpty, token.IsEmpty())
			require.Equal(t, tt.expectedOffset, token.GetOffset())
		})
	}
}

func Test_OffsetToken_String(t *testing.T) {
	require.Equal(t, "", (*OffsetToken)(nil).String())
	require.Equal(t, "", NewOffsetToken(0).String())

	token := (*OffsetToken)(nil).WithOffset(25)
	decoded, err := DecodeOffsetToken(token.String())
	require.NoError(t, err)
	require.Equal(t, 25, decoded.GetOffset())
}

func Test_OffsetToken_JSON(t *testing.T) {
	type response struct {
		NextPageToken *OffsetToken `json:"nextPageToken"`
	}

	data, err := json.Marshal(response{NextPageToken: NewOffsetToken(30)})
	require.NoError(t, err)
	require.JSONEq(t, `{"nextPageToken":"`+NewOffsetToken(30).String()+`"}`, string(data))

	var decoded response
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, 30, decoded.NextPageToken.GetOffset())
}
