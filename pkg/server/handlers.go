package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/elevator/pkg/disk/report"
	"laptudirm.com/x/elevator/pkg/disk/sched"
	"laptudirm.com/x/elevator/pkg/disk/workload"
)

// maxBodySize limits the size of a schedule request body.
const maxBodySize = 1 << 20

type AlgorithmInfo struct {
	Name        sched.Algorithm `json:"name"`
	Description string          `json:"description"`
}

// ScheduleRequest asks for a workload to be scheduled with a set of
// algorithms. If Expected is positive the workload must have exactly that
// many requests.
type ScheduleRequest struct {
	workload.Workload

	Algorithms []sched.Algorithm `json:"algorithms,omitempty"`
	Expected   int               `json:"expected,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, requestID(), map[string]any{
		"status": "healthy",
		"uptime": time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	algos := make([]AlgorithmInfo, len(sched.Algorithms))
	for i, algo := range sched.Algorithms {
		algos[i] = AlgorithmInfo{Name: algo, Description: algo.Description()}
	}

	respondOK(w, requestID(), algos)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := requestID()

	var req ScheduleRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, sched.ErrUnknownAlgorithm) {
			respondError(w, reqID, http.StatusBadRequest, &APIError{Code: ErrCodeUnknownAlgorithm, Message: err.Error()})
			return
		}

		respondError(w, reqID, http.StatusBadRequest, &APIError{Code: ErrCodeBadRequest, Message: "invalid JSON: " + err.Error()})
		return
	}

	if err := req.Validate(req.Expected); err != nil {
		respondError(w, reqID, http.StatusBadRequest, classify(err))
		return
	}

	algos := sched.Unique(req.Algorithms)
	if len(algos) == 0 {
		algos = s.algorithms
	}

	outcomes, err := req.Run(algos...)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, classify(err))
		return
	}

	doc, err := report.NewDocument(sched.Rank(outcomes), req.DiskSize)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, classify(err))
		return
	}

	s.logger.WithFields(logrus.Fields{
		"request_id": reqID,
		"algorithms": len(algos),
		"requests":   len(req.Requests),
		"best":       doc.Best,
	}).Debug("Scheduled workload")

	respondOK(w, reqID, doc)
}

func classify(err error) *APIError {
	code := ErrCodeBadRequest
	switch {
	case errors.Is(err, workload.ErrInvalidCount), errors.Is(err, sched.ErrTooManyRequests):
		code = ErrCodeInvalidCount
	case errors.Is(err, sched.ErrInvalidRange), errors.Is(err, sched.ErrInvalidDiskSize):
		code = ErrCodeInvalidRange
	case errors.Is(err, sched.ErrUnknownAlgorithm):
		code = ErrCodeUnknownAlgorithm
	}

	return &APIError{Code: code, Message: err.Error()}
}
