package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"barberbook/internal/usecase/queries"
)

type TemplateResponse struct {
	ID        uuid.UUID `json:"id"`
	StylistID uuid.UUID `json:"stylistId"`
	Weekday   int       `json:"weekday"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Active    bool      `json:"active"`
}

type IntervalResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type ExceptionResponse struct {
	StylistID uuid.UUID          `json:"stylistId"`
	Date      string             `json:"date"`
	Kind      string             `json:"kind"`
	Intervals []IntervalResponse `json:"intervals"`
	Reason    string             `json:"reason,omitempty"`
}

type DayScheduleResponse struct {
	StylistID uuid.UUID          `json:"stylistId"`
	Date      string             `json:"date"`
	Intervals []IntervalResponse `json:"intervals"`
}

func FromTemplateView(view *queries.TemplateView) *TemplateResponse {
	var resp TemplateResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromTemplateList(views []queries.TemplateView) []TemplateResponse {
	resp := make([]TemplateResponse, 0, len(views))
	_ = copier.Copy(&resp, &views)
	return resp
}

func FromExceptionView(view *queries.ExceptionView) *ExceptionResponse {
	var resp ExceptionResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromDayScheduleView(view *queries.DayScheduleView) *DayScheduleResponse {
	var resp DayScheduleResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
