package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{in: "cn", want: Chinese},
		{in: "en", want: English},
		{in: " EN ", want: English},
		{in: "zh-CN", want: Chinese},
		{in: "zh-Hans", want: Chinese},
		{in: "en-US", want: English},
		{in: "", wantErr: true},
		{in: "klingon!", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLanguage)
				assert.Equal(t, DefaultLanguage, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguage_Toggle(t *testing.T) {
	assert.Equal(t, English, Chinese.Toggle())
	assert.Equal(t, Chinese, English.Toggle())
	assert.Equal(t, Chinese, Chinese.Toggle().Toggle())
}

func TestLanguage_TextRoundTrip(t *testing.T) {
	for _, l := range Languages() {
		text, err := l.MarshalText()
		require.NoError(t, err)

		var back Language
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, l, back)
	}
}

func TestLanguage_Tag(t *testing.T) {
	assert.Equal(t, "zh-CN", Chinese.Tag().String())
	assert.Equal(t, "en", English.Tag().String())
	assert.Equal(t, Chinese, DefaultLanguage)
}
