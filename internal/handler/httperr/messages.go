package httperr

import (
	"physio-scheduler/internal/domain/actor"
	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/commands"
	"physio-scheduler/internal/usecase/queries"
	"physio-scheduler/internal/usecase/shared"
)

// publicSentinels are safe to echo to clients. Order matters: the first
// match wins, so specific sentinels come before generic ones.
var publicSentinels = []error{
	commands.ErrSlotTaken,
	commands.ErrSlotNotOffered,
	commands.ErrProviderInactive,
	commands.ErrOnlyClientsBook,
	commands.ErrNotBookingParty,
	commands.ErrNotScheduleOwner,
	commands.ErrPastOverride,
	commands.ErrCheckoutFailed,
	commands.ErrConcurrentUpdate,
	commands.ErrInvalidSignature,
	commands.ErrMissingEventID,
	queries.ErrBookingNotVisible,
	shared.ErrProviderNotFound,
	shared.ErrBookingNotFound,
	shared.ErrOverrideNotFound,
	booking.ErrIllegalTransition,
	booking.ErrInvalidReference,
	booking.ErrNoteTooLong,
	availability.ErrInvalidTemplate,
	availability.ErrInvalidOverride,
	availability.ErrInvalidWindow,
	availability.ErrInvalidDate,
	availability.ErrInvalidMonth,
	availability.ErrInvalidTimeOfDay,
	actor.ErrInvalidRole,
}

func publicMessage(err error, fallback string) string {
	for _, s := range publicSentinels {
		if errs.Is(err, s) {
			return s.Error()
		}
	}
	return fallback
}
