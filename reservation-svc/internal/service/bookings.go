package service

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"foodiefind/reservation-svc/internal/domain"
)

const dateLayout = "2006-01-02"

// BookingForm is what a customer submits when creating or editing a reservation.
type BookingForm struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	SpecialRequests string `json:"specialRequests"`
}

// UserBookings splits a customer's bookings the way the bookings page shows them.
type UserBookings struct {
	Upcoming []domain.Booking `json:"upcoming"`
	Past     []domain.Booking `json:"past"`
}

type BookingService struct {
	store *Store
	qr    QRGenerator

	clockMu sync.RWMutex
	now     func() time.Time
}

func NewBookingService(store *Store, qr QRGenerator) *BookingService {
	return &BookingService{store: store, qr: qr, now: time.Now}
}

// SetClock replaces the source of "today" used by validation and partitioning.
func (s *BookingService) SetClock(now func() time.Time) {
	s.clockMu.Lock()
	defer s.clockMu.Unlock()
	s.now = now
}

func (s *BookingService) today() time.Time {
	s.clockMu.RLock()
	now := s.now
	s.clockMu.RUnlock()

	n := now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateGuests reports whether n is an accepted party size.
func ValidateGuests(n int) bool {
	return n >= domain.MinGuests && n <= domain.MaxGuests
}

func (s *BookingService) Validate(form BookingForm) error {
	errs := map[string]string{}

	if form.Date == "" {
		errs["date"] = "Date is required"
	} else if d, err := time.Parse(dateLayout, form.Date); err != nil {
		errs["date"] = "Date is invalid"
	} else if d.Before(s.today()) {
		errs["date"] = "Date cannot be in the past"
	}

	if form.Time == "" {
		errs["time"] = "Time is required"
	}
	if strings.TrimSpace(form.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(form.Phone) == "" {
		errs["phone"] = "Phone is required"
	}

	switch {
	case strings.TrimSpace(form.Email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(form.Email):
		errs["email"] = "Email is invalid"
	}

	if !ValidateGuests(form.Guests) {
		errs["guests"] = fmt.Sprintf("Number of guests must be between %d and %d", domain.MinGuests, domain.MaxGuests)
	}

	return validationError(errs)
}

func (s *BookingService) Create(user *domain.User, restaurantID int, form BookingForm) (domain.Booking, error) {
	if user == nil {
		return domain.Booking{}, ErrUnauthenticated
	}
	if err := s.Validate(form); err != nil {
		return domain.Booking{}, err
	}
	restaurant, ok := s.store.Restaurant(restaurantID)
	if !ok {
		return domain.Booking{}, fmt.Errorf("restaurant %d: %w", restaurantID, ErrNotFound)
	}

	booking := s.store.SaveBooking(domain.Booking{
		UserID:          user.ID,
		RestaurantID:    restaurantID,
		Date:            form.Date,
		Time:            form.Time,
		Guests:          form.Guests,
		Name:            form.Name,
		Phone:           form.Phone,
		Email:           form.Email,
		SpecialRequests: form.SpecialRequests,
		Status:          domain.StatusConfirmed,
	})
	log.Printf("Booking %d confirmed at %s for %s at %s", booking.ID, restaurant.Name, booking.Date, booking.Time)
	return booking, nil
}

func (s *BookingService) owned(user *domain.User, bookingID int) (domain.Booking, error) {
	if user == nil {
		return domain.Booking{}, ErrUnauthenticated
	}
	booking, ok := s.store.Booking(bookingID)
	if !ok {
		return domain.Booking{}, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
	}
	if booking.UserID != user.ID {
		return domain.Booking{}, ErrForbidden
	}
	return booking, nil
}

func (s *BookingService) Update(user *domain.User, bookingID int, form BookingForm) (domain.Booking, error) {
	if _, err := s.owned(user, bookingID); err != nil {
		return domain.Booking{}, err
	}
	if err := s.Validate(form); err != nil {
		return domain.Booking{}, err
	}

	updated, ok := s.store.UpdateBooking(bookingID, domain.BookingUpdate{
		Date:            &form.Date,
		Time:            &form.Time,
		Guests:          &form.Guests,
		Name:            &form.Name,
		Phone:           &form.Phone,
		Email:           &form.Email,
		SpecialRequests: &form.SpecialRequests,
	})
	if !ok {
		return domain.Booking{}, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
	}
	return updated, nil
}

func (s *BookingService) Cancel(user *domain.User, bookingID int) (domain.Booking, error) {
	if _, err := s.owned(user, bookingID); err != nil {
		return domain.Booking{}, err
	}

	status := domain.StatusCancelled
	updated, ok := s.store.UpdateBooking(bookingID, domain.BookingUpdate{Status: &status})
	if !ok {
		return domain.Booking{}, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
	}
	log.Printf("Booking %d cancelled", bookingID)
	return updated, nil
}

// ForUser partitions the user's bookings into upcoming (confirmed, today or
// later) and past (earlier than today, or cancelled). Pending future bookings
// belong to neither.
func (s *BookingService) ForUser(userID int) UserBookings {
	today := s.today()
	out := UserBookings{Upcoming: []domain.Booking{}, Past: []domain.Booking{}}

	for _, b := range s.store.Bookings() {
		if b.UserID != userID {
			continue
		}
		d, err := time.Parse(dateLayout, b.Date)
		if err != nil {
			log.Printf("Warning: booking %d has unparseable date %q", b.ID, b.Date)
			continue
		}
		if !d.Before(today) && b.Status == domain.StatusConfirmed {
			out.Upcoming = append(out.Upcoming, b)
		}
		if d.Before(today) || b.Status == domain.StatusCancelled {
			out.Past = append(out.Past, b)
		}
	}
	return out
}

// ConfirmationQR renders a PNG QR code for one of the user's bookings.
func (s *BookingService) ConfirmationQR(user *domain.User, bookingID int) ([]byte, error) {
	booking, err := s.owned(user, bookingID)
	if err != nil {
		return nil, err
	}
	if s.qr == nil {
		return nil, fmt.Errorf("qr generator not configured")
	}
	return s.qr.Generate(booking.ID)
}
