package apitest

import (
	"net/http"
	"slices"

	"github.com/heartmarshall/agei/internal/domain"
)

// analysis is the document served at /emocional/analise.
type analysis struct {
	MoodAverage   float64         `json:"media_humor"`
	EnergyAverage float64         `json:"media_energia"`
	StressAverage float64         `json:"media_estresse"`
	CheckInCount  int             `json:"total_checkins"`
	EventCount    int             `json:"total_eventos"`
	EventsByKind  map[string]int  `json:"eventos_por_tipo"`
	LatestCheckIn *domain.CheckIn `json:"ultimo_checkin,omitempty"`
}

func (s *Server) handleListCheckIns(w http.ResponseWriter, r *http.Request) {
	s.mem.mu.Lock()
	checkIns := slices.Clone(s.mem.of(userIDFrom(r.Context())).checkIns)
	s.mem.mu.Unlock()

	if checkIns == nil {
		checkIns = []domain.CheckIn{}
	}
	writeJSON(w, http.StatusOK, checkIns)
}

func (s *Server) handleCreateCheckIn(w http.ResponseWriter, r *http.Request) {
	var d domain.CheckInDraft
	if err := decodeJSON(r, &d); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if d.Mood == nil || d.Energy == nil || d.Stress == nil {
		writeError(w, http.StatusBadRequest, "humor, energia e estresse são obrigatórios")
		return
	}
	if err := d.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mem.mu.Lock()
	c := domain.CheckIn{
		ID:        s.mem.id("check_ins"),
		Mood:      *d.Mood,
		Energy:    *d.Energy,
		Stress:    *d.Stress,
		Timestamp: domain.NewTimestamp(s.mem.now().UTC()),
	}
	if d.Notes != nil {
		c.Notes = *d.Notes
	}
	data := s.mem.of(userIDFrom(r.Context()))
	// Newest first, as the API lists them.
	data.checkIns = append([]domain.CheckIn{c}, data.checkIns...)
	s.mem.mu.Unlock()

	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	s.mem.mu.Lock()
	events := slices.Clone(s.mem.of(userIDFrom(r.Context())).events)
	s.mem.mu.Unlock()

	if events == nil {
		events = []domain.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var d domain.EventDraft
	if err := decodeJSON(r, &d); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if d.Impact == nil {
		writeError(w, http.StatusBadRequest, "impacto é obrigatório")
		return
	}
	if err := d.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mem.mu.Lock()
	e := domain.Event{
		ID:          s.mem.id("eventos"),
		Kind:        *d.Kind,
		Description: *d.Description,
		Impact:      *d.Impact,
		Timestamp:   domain.NewTimestamp(s.mem.now().UTC()),
	}
	data := s.mem.of(userIDFrom(r.Context()))
	data.events = append([]domain.Event{e}, data.events...)
	s.mem.mu.Unlock()

	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	s.mem.mu.Lock()
	data := s.mem.of(userIDFrom(r.Context()))
	avg := domain.AverageCheckIns(data.checkIns)
	a := analysis{
		MoodAverage:   avg.Mood,
		EnergyAverage: avg.Energy,
		StressAverage: avg.Stress,
		CheckInCount:  avg.Count,
		EventCount:    len(data.events),
		EventsByKind:  map[string]int{},
	}
	for _, e := range data.events {
		a.EventsByKind[e.Kind.String()]++
	}
	if len(data.checkIns) > 0 {
		latest := data.checkIns[0]
		a.LatestCheckIn = &latest
	}
	s.mem.mu.Unlock()

	writeJSON(w, http.StatusOK, a)
}
