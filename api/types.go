// Package api defines the JSON request and response types of the HTTP
// contract. Validation rules live on the request types as struct tags and
// are enforced with go-playground/validator.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

// Users and sessions

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Activated bool      `json:"activated"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int       `json:"version"`
}

type UserActivationRequest struct {
	Token string `json:"token" validate:"required,len=43"`
}

type UserActivationResponse struct {
	Activated bool `json:"activated"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Catalog

type ActorRequest struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
}

type ActorResponse struct {
	Id        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

type ActorListResponse struct {
	Actors []ActorResponse `json:"actors"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type GenreResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type GenreListResponse struct {
	Genres []GenreResponse `json:"genres"`
}

type PlayRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	GenreIds    []int  `json:"genreIds" validate:"dive,gt=0"`
	ActorIds    []int  `json:"actorIds" validate:"dive,gt=0"`
}

type PlayResponse struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Genres      []GenreResponse `json:"genres"`
	Actors      []ActorResponse `json:"actors"`
	ImageUrl    *string         `json:"imageUrl,omitempty"`
}

type PlayListResponse struct {
	Plays    []PlayResponse `json:"plays"`
	Metadata Metadata       `json:"metadata"`
}

type ListPlaysParams struct {
	Title    *string `validate:"omitempty,max=255"`
	Genres   *string `validate:"omitempty"`
	Actors   *string `validate:"omitempty"`
	Page     *int    `validate:"omitempty,min=1"`
	PageSize *int    `validate:"omitempty,min=1,max=100"`
}

type PlayImageResponse struct {
	Id       int    `json:"id"`
	ImageUrl string `json:"imageUrl"`
}

type TheatreHallRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Rows       int    `json:"rows" validate:"required,gt=0"`
	SeatsInRow int    `json:"seatsInRow" validate:"required,gt=0"`
}

type TheatreHallResponse struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seatsInRow"`
	Capacity   int    `json:"capacity"`
}

type TheatreHallListResponse struct {
	TheatreHalls []TheatreHallResponse `json:"theatreHalls"`
}

// Performances

type PerformanceRequest struct {
	PlayId        int       `json:"playId" validate:"required,gt=0"`
	TheatreHallId int       `json:"theatreHallId" validate:"required,gt=0"`
	ShowTime      time.Time `json:"showTime" validate:"required"`
}

type PropRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type PerformanceUpdateRequest struct {
	PlayId        int           `json:"playId" validate:"required,gt=0"`
	TheatreHallId int           `json:"theatreHallId" validate:"required,gt=0"`
	ShowTime      time.Time     `json:"showTime" validate:"required"`
	Props         []PropRequest `json:"props" validate:"dive"`
}

type PropResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type PerformanceResponse struct {
	Id            int       `json:"id"`
	PlayId        int       `json:"playId"`
	TheatreHallId int       `json:"theatreHallId"`
	ShowTime      time.Time `json:"showTime"`
}

type PerformanceSummary struct {
	Id                  int       `json:"id"`
	ShowTime            time.Time `json:"showTime"`
	PlayTitle           string    `json:"playTitle"`
	PlayImageUrl        *string   `json:"playImageUrl,omitempty"`
	TheatreHallName     string    `json:"theatreHallName"`
	TheatreHallCapacity int       `json:"theatreHallCapacity"`
	TicketsAvailable    int       `json:"ticketsAvailable"`
}

type PerformanceListResponse struct {
	Performances []PerformanceSummary `json:"performances"`
}

type ListPerformancesParams struct {
	Date *string `validate:"omitempty,datetime=2006-01-02"`
	Play *int    `validate:"omitempty,gt=0"`
}

type SeatPosition struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type PerformanceDetailResponse struct {
	Id          int                 `json:"id"`
	ShowTime    time.Time           `json:"showTime"`
	Play        PlayResponse        `json:"play"`
	TheatreHall TheatreHallResponse `json:"theatreHall"`
	TakenSeats  []SeatPosition      `json:"takenSeats"`
	Props       []PropResponse      `json:"props"`
}

// Reservations

type TicketRequest struct {
	Row           int `json:"row" validate:"required,gt=0"`
	Seat          int `json:"seat" validate:"required,gt=0"`
	PerformanceId int `json:"performanceId" validate:"required,gt=0"`
}

type CreateReservationRequest struct {
	// Tickets may be empty: a reservation with zero tickets is allowed.
	Tickets []TicketRequest `json:"tickets" validate:"dive"`
}

type TicketResponse struct {
	Id            int `json:"id"`
	Row           int `json:"row"`
	Seat          int `json:"seat"`
	PerformanceId int `json:"performanceId"`
}

type ReservationResponse struct {
	Id        int              `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Tickets   []TicketResponse `json:"tickets"`
}

type TicketDetail struct {
	Id              int       `json:"id"`
	Row             int       `json:"row"`
	Seat            int       `json:"seat"`
	PerformanceId   int       `json:"performanceId"`
	ShowTime        time.Time `json:"showTime"`
	PlayTitle       string    `json:"playTitle"`
	TheatreHallName string    `json:"theatreHallName"`
}

type ReservationSummary struct {
	Id        int            `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Tickets   []TicketDetail `json:"tickets"`
}

type UserReservationsResponse struct {
	Reservations []ReservationSummary `json:"reservations"`
	Metadata     Metadata             `json:"metadata"`
}

type ListReservationsParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}
