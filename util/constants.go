package util

// Collection names inside the portal database.
const (
	AppointmentOptionCollection = "appointmentOptions"
	BookingCollection           = "bookings"
	UserCollection              = "users"
	DoctorCollection            = "doctors"
	PaymentCollection           = "payments"
)

// Cache keys.
const (
	AppointmentOptionsKey = "APPOINTMENT_OPTIONS"
)

const (
	UNAUTHORIZED_ACCESS         = "unauthorized access"
	FORBIDDEN_ACCESS            = "forbidden access"
	INVALID_ID                  = "invalid id"
	INVALID_INPUT               = "invalid input"
	DUPLICATE_RECORD            = "duplicate record"
	RECORD_NOT_FOUND            = "record not found"
	BOOKING_NOT_FOUND           = "booking not found"
	USER_NOT_FOUND              = "user not found"
	DOCTOR_NOT_FOUND            = "doctor not found"
	BOOKING_ALREADY_EXISTS      = "You already have a booking on %s"
	BOOKING_ALREADY_PAID        = "booking already paid"
	USER_ALREADY_EXISTS         = "user already exists with email %s"
	EMAIL_NOT_PROVIDED          = "email not provided"
	DATE_NOT_PROVIDED           = "date not provided"
	UNABLE_TO_FETCH_EMAIL       = "unable to fetch email from context"
	PAYMENT_PROCESSOR_NOT_SETUP = "payment processor not configured"
	SERVER_RUNNING              = "Doctor Portal Server Connected"
)
