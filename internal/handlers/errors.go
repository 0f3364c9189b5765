package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/session"
	scheduleuc "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

type errorMapping struct {
	status  int
	message string
}

// businessErrors maps every business code to its HTTP status and the
// message shown to the user.
var businessErrors = map[string]errorMapping{
	// -------- booking: input --------
	domain.CodeValidation:         {http.StatusBadRequest, "Revisá los datos: nombre y teléfono son obligatorios."},
	domain.CodeInvalidDateOrTime:  {http.StatusBadRequest, "Fecha u hora inválida."},
	domain.CodeInvalidPhone:       {http.StatusBadRequest, "El teléfono ingresado no es válido."},
	domain.CodeInvalidSlot:        {http.StatusBadRequest, "El horario elegido no corresponde a un turno disponible."},
	domain.CodeSlotInPast:         {http.StatusBadRequest, "El horario elegido ya pasó."},
	domain.CodeBarberNotFound:     {http.StatusBadRequest, "El barbero elegido no existe."},
	domain.CodeServiceNotBookable: {http.StatusBadRequest, "Este servicio se coordina por WhatsApp."},

	// -------- booking: conflicts --------
	domain.CodeDateBlocked:       {http.StatusConflict, "La barbería no atiende en esta fecha."},
	domain.CodeDateClosed:        {http.StatusConflict, "La barbería está cerrada en esta fecha."},
	domain.CodeBarberUnavailable: {http.StatusConflict, "Este barbero ya tiene un turno en este horario, elegí otro."},
	domain.CodeSlotTaken:         {http.StatusConflict, "Este horario acaba de ser reservado, elegí otro."},
	domain.CodeNoAvailability:    {http.StatusConflict, "No quedan barberos disponibles en este horario."},

	domain.CodeStoreUnavailable:    {http.StatusServiceUnavailable, "Servicio no disponible, intentá nuevamente."},
	domain.CodeAppointmentNotFound: {http.StatusNotFound, "Turno no encontrado."},

	// -------- selection session --------
	session.CodeSessionNotFound: {http.StatusNotFound, "La sesión expiró, volvé a elegir el turno."},
	session.CodeDateRequired:    {http.StatusBadRequest, "Elegí una fecha primero."},
	session.CodeSlotUnavailable: {http.StatusConflict, "Ese horario ya no está disponible."},

	// -------- admin schedule --------
	scheduleuc.CodeInvalidDate:        {http.StatusBadRequest, "Fecha inválida."},
	scheduleuc.CodeInvalidTimeRange:   {http.StatusBadRequest, "La hora de inicio debe ser anterior a la de fin."},
	scheduleuc.CodeDateAlreadyBlocked: {http.StatusConflict, "Esa fecha ya está bloqueada."},
	scheduleuc.CodeBlockedNotFound:    {http.StatusNotFound, "Fecha bloqueada no encontrada."},
	scheduleuc.CodeOverrideNotFound:   {http.StatusNotFound, "Horario especial no encontrado."},
}

// writeError renders err. Unknown errors become a 500 with a generic code.
// The error is attached to the gin context so the request log carries it.
func writeError(c *gin.Context, err error) {
	writeErrorWithInput(c, err, nil)
}

func writeErrorWithInput(c *gin.Context, err error, input any) {
	_ = c.Error(err)

	code := httperr.CodeOf(err)
	m, ok := businessErrors[code]
	if !ok {
		httperr.WriteWithInput(c, http.StatusInternalServerError, "internal_error", "Error inesperado, intentá nuevamente.", input)
		return
	}

	httperr.WriteWithInput(c, m.status, code, m.message, input)
}
