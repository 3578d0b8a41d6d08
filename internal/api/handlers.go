package api

import (
	"encoding/json"
	"net/http"

	"github.com/san-kum/physlab/internal/acoustics"
	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/mech"
	"github.com/san-kum/physlab/internal/report"
	"github.com/san-kum/physlab/internal/storage"
)

type atwoodRestRequest struct {
	MassTableKg   float64 `json:"mass_table_kg"`
	MassHangingKg float64 `json:"mass_hanging_kg"`
	Mu            float64 `json:"mu"`
	Gravity       float64 `json:"gravity"`
	FrictionOn    bool    `json:"friction_on"`
	TargetM       float64 `json:"target_m"`
}

type atwoodRestResponse struct {
	Acceleration float64  `json:"acceleration"`
	Tension      float64  `json:"tension"`
	Friction     float64  `json:"friction"`
	NetForce     float64  `json:"net_force"`
	DriveForce   float64  `json:"drive_force"`
	Moved        bool     `json:"moved"`
	TimeToTarget *float64 `json:"time_to_target"`
	Mode         string   `json:"mode"`
}

type atwoodDynamicRequest struct {
	MassTableKg   float64 `json:"mass_table_kg"`
	MassHangingKg float64 `json:"mass_hanging_kg"`
	Mu            float64 `json:"mu"`
	Gravity       float64 `json:"gravity"`
	FrictionOn    bool    `json:"friction_on"`
	Velocity      float64 `json:"velocity"`
}

type atwoodDynamicResponse struct {
	Acceleration   float64 `json:"acceleration"`
	Tension        float64 `json:"tension"`
	FrictionSigned float64 `json:"friction_signed"`
	NetForce       float64 `json:"net_force"`
	DriveForce     float64 `json:"drive_force"`
	Mode           string  `json:"mode"`
}

type resonanceLengthRequest struct {
	FrequencyHz   float64 `json:"frequency_hz"`
	TubeDiameterM float64 `json:"tube_diameter_m"`
	AirTempC      float64 `json:"air_temp_c"`
}

type resonanceLengthResponse struct {
	SpeedOfSound  float64 `json:"speed_of_sound"`
	TargetLengthM float64 `json:"target_length_m"`
}

type resonanceSpeedRequest struct {
	FrequencyHz   float64 `json:"frequency_hz"`
	AirLengthM    float64 `json:"air_length_m"`
	TubeDiameterM float64 `json:"tube_diameter_m"`
}

type resonanceSpeedResponse struct {
	InferredSpeed float64 `json:"inferred_speed"`
}

type resonanceQualityRequest struct {
	AirLengthM    float64 `json:"air_length_m"`
	TargetLengthM float64 `json:"target_length_m"`
	Bandwidth     float64 `json:"bandwidth,omitempty"`
}

type resonanceQualityResponse struct {
	Strength float64        `json:"strength"`
	Band     acoustics.Band `json:"band"`
}

// Handler serves the solver and trial-log endpoints.
type Handler struct {
	Store *storage.Store
}

func (h *Handler) AtwoodRest(w http.ResponseWriter, r *http.Request) {
	var req atwoodRestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := mech.ResolveFromRest(mech.Params{
		MassTable:   req.MassTableKg,
		MassHanging: req.MassHangingKg,
		Mu:          req.Mu,
		Gravity:     req.Gravity,
		FrictionOn:  req.FrictionOn,
	}, req.TargetM)

	out := atwoodRestResponse{
		Acceleration: res.Acceleration,
		Tension:      res.Tension,
		Friction:     res.Friction,
		NetForce:     res.NetForce,
		DriveForce:   res.DriveForce,
		Moved:        res.Moved,
		Mode:         string(res.Mode),
	}
	if res.TimeToTargetOK {
		t := res.TimeToTarget
		out.TimeToTarget = &t
	}
	writeJSON(w, out)
}

func (h *Handler) AtwoodDynamic(w http.ResponseWriter, r *http.Request) {
	var req atwoodDynamicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := mech.ResolveDynamic(mech.Params{
		MassTable:   req.MassTableKg,
		MassHanging: req.MassHangingKg,
		Mu:          req.Mu,
		Gravity:     req.Gravity,
		FrictionOn:  req.FrictionOn,
	}, req.Velocity)

	writeJSON(w, atwoodDynamicResponse{
		Acceleration:   res.Acceleration,
		Tension:        res.Tension,
		FrictionSigned: res.FrictionSigned,
		NetForce:       res.NetForce,
		DriveForce:     res.DriveForce,
		Mode:           string(res.Mode),
	})
}

func (h *Handler) ResonanceLength(w http.ResponseWriter, r *http.Request) {
	var req resonanceLengthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	speed := acoustics.SpeedOfSoundFromTemp(req.AirTempC)
	writeJSON(w, resonanceLengthResponse{
		SpeedOfSound:  speed,
		TargetLengthM: acoustics.FirstHarmonicAirLength(req.FrequencyHz, speed, req.TubeDiameterM),
	})
}

func (h *Handler) ResonanceSpeed(w http.ResponseWriter, r *http.Request) {
	var req resonanceSpeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	writeJSON(w, resonanceSpeedResponse{
		InferredSpeed: acoustics.InferredSpeed(req.FrequencyHz, req.AirLengthM, req.TubeDiameterM),
	})
}

func (h *Handler) ResonanceQuality(w http.ResponseWriter, r *http.Request) {
	var req resonanceQualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var strength float64
	if req.Bandwidth > 0 {
		strength = acoustics.ResonanceStrengthWithBandwidth(req.AirLengthM, req.TargetLengthM, req.Bandwidth)
	} else {
		strength = acoustics.ResonanceStrength(req.AirLengthM, req.TargetLengthM)
	}
	writeJSON(w, resonanceQualityResponse{
		Strength: strength,
		Band:     acoustics.QualityBand(strength),
	})
}

func (h *Handler) ListTrials(w http.ResponseWriter, r *http.Request) {
	trials, err := h.Store.LoadTrials()
	if err != nil {
		http.Error(w, "Failed to load trials", http.StatusInternalServerError)
		return
	}
	writeJSON(w, trials)
}

func (h *Handler) LogTrial(w http.ResponseWriter, r *http.Request) {
	var t experiment.Trial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if t.Experiment != "atwood" && t.Experiment != "resonance" {
		http.Error(w, "Unknown experiment", http.StatusBadRequest)
		return
	}
	saved, err := h.Store.AppendTrial(t)
	if err != nil {
		http.Error(w, "Failed to save trial", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saved)
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	trials, err := h.Store.LoadTrials()
	if err != nil {
		http.Error(w, "Failed to load trials", http.StatusInternalServerError)
		return
	}
	meta := report.Meta{
		Title:   r.URL.Query().Get("title"),
		Student: r.URL.Query().Get("student"),
		Course:  r.URL.Query().Get("course"),
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="lab-report.pdf"`)
	if err := report.Build(w, meta, trials); err != nil {
		http.Error(w, "Failed to render report", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
