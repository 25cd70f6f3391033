package models

import "time"

// Application status constants
const (
	StatusNew     = "new"
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusFailed  = "failed"
)

// Review moderation constants
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
	ReviewAll      = "all"
)

// Contest defaults applied on create
const (
	DefaultContestPrice  = 200.0
	DefaultContestStatus = "active"
)

// Gateway event and payment status values
const (
	EventPaymentSucceeded = "payment.succeeded"
	PaymentSucceeded      = "succeeded"
)

// DeadlineLayout renders contest deadlines as "05 March 2025"
const DeadlineLayout = "02 January 2006"

// Domain types

type Contest struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	CategoryID   *string  `json:"categoryId"`
	Deadline     *string  `json:"deadline"`
	Price        *float64 `json:"price"`
	Status       *string  `json:"status"`
	RulesLink    *string  `json:"rulesLink"`
	DiplomaImage *string  `json:"diplomaImage"`
	Image        *string  `json:"image"`
	Participants int      `json:"participants"`
	IsPopular    bool     `json:"isPopular"`
}

type Application struct {
	ID             int64      `json:"id"`
	FullName       string     `json:"full_name"`
	Age            *int       `json:"age"`
	Teacher        *string    `json:"teacher"`
	Institution    *string    `json:"institution"`
	WorkTitle      *string    `json:"work_title"`
	Email          *string    `json:"email"`
	ContestID      *int64     `json:"contest_id"`
	ContestName    *string    `json:"contest_name"`
	WorkFileURL    *string    `json:"work_file_url"`
	Status         string     `json:"status"`
	Result         *string    `json:"result"`
	PaymentID      *string    `json:"payment_id"`
	PaymentStatus  *string    `json:"payment_status"`
	GalleryConsent bool       `json:"gallery_consent"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at"`
}

type Result struct {
	ID             int64      `json:"id"`
	ApplicationID  *int64     `json:"application_id"`
	FullName       *string    `json:"full_name"`
	Age            *int       `json:"age"`
	Teacher        *string    `json:"teacher"`
	Institution    *string    `json:"institution"`
	WorkTitle      *string    `json:"work_title"`
	Email          *string    `json:"email"`
	ContestID      *int64     `json:"contest_id"`
	ContestName    *string    `json:"contest_name"`
	WorkFileURL    *string    `json:"work_file_url"`
	Result         *string    `json:"result"`
	Place          *string    `json:"place"`
	Score          *float64   `json:"score"`
	DiplomaURL     *string    `json:"diploma_url"`
	Notes          *string    `json:"notes"`
	GalleryConsent bool       `json:"gallery_consent"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// PublicResult is the consented projection of a Result
type PublicResult struct {
	ID          int64      `json:"id"`
	FullName    *string    `json:"full_name"`
	Age         *int       `json:"age"`
	Teacher     *string    `json:"teacher"`
	Institution *string    `json:"institution"`
	WorkTitle   *string    `json:"work_title"`
	ContestName *string    `json:"contest_name"`
	Result      *string    `json:"result"`
	WorkFileURL *string    `json:"work_file_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type GalleryWork struct {
	ID          int64     `json:"id"`
	FullName    *string   `json:"full_name"`
	Age         *int      `json:"age"`
	WorkTitle   *string   `json:"work_title"`
	ContestName *string   `json:"contest_name"`
	WorkFileURL string    `json:"work_file_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type Review struct {
	ID          int64      `json:"id"`
	AuthorName  string     `json:"author_name"`
	AuthorRole  *string    `json:"author_role"`
	Rating      *int       `json:"rating"`
	Text        string     `json:"text"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at"`
}

// Request types

// ContestRequest is used for both create and full-replace update.
// Nil price/status/isPopular take the create defaults.
type ContestRequest struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	CategoryID   *string  `json:"categoryId"`
	Deadline     *string  `json:"deadline"`
	Price        *float64 `json:"price"`
	Status       *string  `json:"status"`
	RulesLink    *string  `json:"rulesLink"`
	DiplomaImage *string  `json:"diplomaImage"`
	Image        *string  `json:"image"`
	IsPopular    *bool    `json:"isPopular"`
}

type SubmitApplicationRequest struct {
	FullName       string `json:"full_name" validate:"required"`
	Age            int    `json:"age" validate:"required"`
	Teacher        string `json:"teacher"`
	Institution    string `json:"institution"`
	WorkTitle      string `json:"work_title" validate:"required"`
	Email          string `json:"email" validate:"required"`
	ContestID      *int64 `json:"contest_id"`
	ContestName    string `json:"contest_name" validate:"required"`
	WorkFile       string `json:"work_file" validate:"required"`
	FileName       string `json:"file_name" validate:"required"`
	FileType       string `json:"file_type"`
	GalleryConsent bool   `json:"gallery_consent"`
}

type UpdateApplicationRequest struct {
	ID          int64   `json:"id"`
	FullName    *string `json:"full_name"`
	Age         *int    `json:"age"`
	Teacher     *string `json:"teacher"`
	Institution *string `json:"institution"`
	WorkTitle   *string `json:"work_title"`
	Email       *string `json:"email"`
	Status      *string `json:"status"`
	Result      *string `json:"result"`
}

type ApplicantData struct {
	FullName       string `json:"full_name" validate:"required"`
	Age            *int   `json:"age"`
	Teacher        string `json:"teacher"`
	Institution    string `json:"institution"`
	WorkTitle      string `json:"work_title"`
	Email          string `json:"email"`
	ContestID      *int64 `json:"contest_id"`
	ContestName    string `json:"contest_name"`
	WorkFileURL    string `json:"work_file_url"`
	GalleryConsent bool   `json:"gallery_consent"`
}

type CreatePaymentRequest struct {
	Amount          float64        `json:"amount" validate:"gt=0"`
	Description     string         `json:"description" validate:"required"`
	ContestName     string         `json:"contest_name"`
	Email           string         `json:"email"`
	ApplicationData *ApplicantData `json:"application_data" validate:"required"`
}

// WebhookNotification is the gateway's asynchronous payment event
type WebhookNotification struct {
	Event  string `json:"event"`
	Object struct {
		ID       string         `json:"id"`
		Status   string         `json:"status"`
		Metadata map[string]any `json:"metadata"`
	} `json:"object"`
}

type ResultRequest struct {
	ID             int64    `json:"id"`
	ApplicationID  *int64   `json:"application_id"`
	FullName       *string  `json:"full_name"`
	Age            *int     `json:"age"`
	Teacher        *string  `json:"teacher"`
	Institution    *string  `json:"institution"`
	WorkTitle      *string  `json:"work_title"`
	Email          *string  `json:"email"`
	ContestID      *int64   `json:"contest_id"`
	ContestName    *string  `json:"contest_name"`
	WorkFileURL    *string  `json:"work_file_url"`
	Result         *string  `json:"result"`
	Place          *string  `json:"place"`
	Score          *float64 `json:"score"`
	DiplomaURL     *string  `json:"diploma_url"`
	Notes          *string  `json:"notes"`
	GalleryConsent bool     `json:"gallery_consent"`
}

type CreateReviewRequest struct {
	AuthorName string  `json:"author_name" validate:"required"`
	AuthorRole *string `json:"author_role"`
	Rating     *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Text       string  `json:"text" validate:"required"`
	// Status is accepted but never honoured; reviews always start pending
	Status string `json:"status"`
}

type ModerateReviewRequest struct {
	ID     int64  `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type UploadFileRequest struct {
	File     string `json:"file" validate:"required"`
	FileName string `json:"fileName" validate:"required"`
	FileType string `json:"fileType"`
	Folder   string `json:"folder"`
}

// Response types

type IDResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type SubmitApplicationResponse struct {
	Success       bool   `json:"success"`
	ApplicationID int64  `json:"application_id"`
	WorkURL       string `json:"work_url"`
}

type CreatePaymentResponse struct {
	PaymentID       string `json:"payment_id"`
	ConfirmationURL string `json:"confirmation_url"`
	Status          string `json:"status"`
	ApplicationID   int64  `json:"application_id"`
}

type WebhookResponse struct {
	Status        string       `json:"status"`
	Event         string       `json:"event,omitempty"`
	ApplicationID int64        `json:"application_id,omitempty"`
	PaymentStatus string       `json:"payment_status,omitempty"`
	Application   *Application `json:"application,omitempty"`
}

type UploadFileResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	Message  string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
