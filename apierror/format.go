package apierror

import "github.com/hamzafarrukh73/authclient/notify"

// FormatForToast maps a typed error to its notification presentation.
// Every kind has a fixed title; validation errors enumerate all field
// errors in the description. The color is always the error severity;
// no kind maps to warning today, though the type allows it.
func FormatForToast(e *Error) notify.Notification {
	if e == nil {
		return notify.Notification{Title: "Error", Color: notify.ColorError}
	}

	switch e.Kind {
	case KindValidation:
		return notify.Notification{
			Title:       "Validation Error",
			Description: e.FieldSummary(),
			Color:       notify.ColorError,
		}
	case KindAuthentication:
		return notify.Notification{
			Title:       "Authentication Error",
			Description: e.Message,
			Color:       notify.ColorError,
		}
	case KindAuthorization:
		return notify.Notification{
			Title:       "Access Denied",
			Description: e.Message,
			Color:       notify.ColorError,
		}
	case KindNotFound:
		return notify.Notification{
			Title:       "Not Found",
			Description: e.Message,
			Color:       notify.ColorError,
		}
	case KindServer:
		return notify.Notification{
			Title:       "Server Error",
			Description: e.Message,
			Color:       notify.ColorError,
		}
	case KindNetwork:
		return notify.Notification{
			Title:       "Connection Error",
			Description: e.Message,
			Color:       notify.ColorError,
		}
	default:
		return notify.Notification{
			Title:       "Error",
			Description: e.Message,
			Color:       notify.ColorError,
		}
	}
}
