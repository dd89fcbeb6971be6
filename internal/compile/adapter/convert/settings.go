package convert

import (
	v1 "github.com/Wenrh2004/playground/api/v1"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
)

func SettingsResponseConvert(s *aggregate.UserSettings) *v1.SettingsResponseBody {
	body := &v1.SettingsResponseBody{
		UserID:   s.UserID,
		Settings: SettingsBodyConvert(s.Settings),
	}
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt
		body.UpdatedAt = &updated
	}
	return body
}
