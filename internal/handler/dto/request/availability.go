package request

type CreateTemplateRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateTemplateRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// SetExceptionRequest covers the three exception shapes. Start and end
// are required for partial blocks and overrides, ignored for full-day
// blocks.
type SetExceptionRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=full_day_block partial_block override"`
	StartTime string `json:"start_time" binding:"required_unless=Kind full_day_block"`
	EndTime   string `json:"end_time" binding:"required_unless=Kind full_day_block"`
	Reason    string `json:"reason" binding:"max=200"`
}
