package request

import "restaurant-crm/internal/usecase/commands"

// UpdateSettingsRequest replaces every field; omitted fields are cleared.
type UpdateSettingsRequest struct {
	HostChoice   *string `json:"host_choice"`
	GreetingText *string `json:"greeting_text"`
	InfoText     *string `json:"info_text"`
}

func (r *UpdateSettingsRequest) ToCommand() commands.UpdateSettingsRequest {
	return commands.UpdateSettingsRequest{
		HostChoice:   r.HostChoice,
		GreetingText: r.GreetingText,
		InfoText:     r.InfoText,
	}
}
