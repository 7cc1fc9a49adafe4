package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideo_ValidateForCreation(t *testing.T) {
	valid := Video{
		HashID:                 "v1",
		Title:                  "Launch Day",
		AccessType:             AccessTypePremium,
		SourceKind:             SourceKindHosted,
		TrailerDurationSeconds: 45,
	}
	require.NoError(t, valid.ValidateForCreation())

	cases := []struct {
		name   string
		mutate func(*Video)
	}{
		{"missing_hash_id", func(v *Video) { v.HashID = "" }},
		{"missing_title", func(v *Video) { v.Title = "" }},
		{"unknown_access_type", func(v *Video) { v.AccessType = "vip" }},
		{"unknown_source_kind", func(v *Video) { v.SourceKind = "torrent" }},
		{"trailer_too_short", func(v *Video) { v.TrailerDurationSeconds = 9 }},
		{"trailer_too_long", func(v *Video) { v.TrailerDurationSeconds = 121 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := valid
			tc.mutate(&v)
			assert.Error(t, v.ValidateForCreation())
		})
	}

	// Zero means "use the default" and passes creation validation.
	v := valid
	v.TrailerDurationSeconds = 0
	assert.NoError(t, v.ValidateForCreation())
}

func TestVideo_EffectiveTrailerDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, Video{}.EffectiveTrailerDuration())
	assert.Equal(t, 45*time.Second, Video{TrailerDurationSeconds: 45}.EffectiveTrailerDuration())
	assert.Equal(t, 5*time.Second, Video{TrailerDurationSeconds: 5}.EffectiveTrailerDuration())
}
