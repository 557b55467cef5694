package domain

type CreateEngineerRequest struct {
	FullName             string   `json:"full_name" validate:"required"`
	Email                string   `json:"email" validate:"required,email"`
	Phone                string   `json:"phone" validate:"omitempty,max=32"`
	Specialization       string   `json:"specialization" validate:"omitempty,max=100"`
	Lat                  *float64 `json:"lat" validate:"omitempty,lat"`
	Lng                  *float64 `json:"lng" validate:"omitempty,lng"`
	CoverageRadiusMeters *int     `json:"coverage_radius_meters" validate:"omitempty,radius_m"`
}

type UpdateEngineerRequest struct {
	FullName             *string         `json:"full_name" validate:"omitempty,min=1"`
	Email                *string         `json:"email" validate:"omitempty,email"`
	Phone                *string         `json:"phone" validate:"omitempty,max=32"`
	Specialization       *string         `json:"specialization" validate:"omitempty,max=100"`
	Status               *EngineerStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	Lat                  *float64        `json:"lat" validate:"omitempty,lat"`
	Lng                  *float64        `json:"lng" validate:"omitempty,lng"`
	CoverageRadiusMeters *int            `json:"coverage_radius_meters" validate:"omitempty,radius_m"`
}

type CreateReportRequest struct {
	HazardType  string   `json:"hazard_type" validate:"required,max=100"`
	Severity    Severity `json:"severity" validate:"required,oneof=minor medium high critical"`
	Lat         *float64 `json:"lat" validate:"omitempty,lat"`
	Lng         *float64 `json:"lng" validate:"omitempty,lng"`
	Address     string   `json:"address" validate:"omitempty,max=255"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
}

type CreateFeedbackRequest struct {
	Type            FeedbackType `json:"feedback_type" validate:"required,oneof=status_update location_correction additional_info general_comment"`
	Message         string       `json:"message" validate:"required,max=2000"`
	ReporterName    *string      `json:"reporter_name" validate:"omitempty,max=100"`
	ReporterContact *string      `json:"reporter_contact" validate:"omitempty,max=100"`
}

type RejectReportRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type ResolveReportRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateFeedbackStatusRequest struct {
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes" validate:"omitempty,max=2000"`
}
