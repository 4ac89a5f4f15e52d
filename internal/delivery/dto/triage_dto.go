package dto

// Request DTOs

type VitalsRequest struct {
	Weight        string `json:"weight" validate:"required"`
	Height        string `json:"height" validate:"required"`
	Temperature   string `json:"temperature" validate:"required"`
	BloodPressure string `json:"blood_pressure" validate:"required"`
}

type CompleteTriageRequest struct {
	Vitals       VitalsRequest `json:"vitals" validate:"required"`
	Observations string        `json:"observations" validate:"required"`
	Priority     string        `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}
