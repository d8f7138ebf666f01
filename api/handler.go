package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/tracing"
)

const Version = "1.0.0"

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	NonPreemptivePriority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
	HealthCheck(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	limits schedulers.Limits
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		limits: schedulers.Limits{MaxProcesses: config.MaxProcesses, MaxTotalBurst: config.MaxTotalBurst},
		logger: logger,
	}
}

// Schedule handles POST /api/schedule, taking the algorithm from the body.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	algorithm, err := schedulers.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respond(ctx, algorithm, request)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.SRTF)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.RR)
}

func (s *SchedulerHandlerImpl) NonPreemptivePriority(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.NPP)
}

// AllAlgorithms runs every algorithm on the same input. Any validation failure rejects the whole request.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}

	all := make(map[string]responses.ScheduleResponse, len(schedulers.Algorithms))
	for _, algorithm := range schedulers.Algorithms {
		response, err := s.run(ctx.UserContext(), algorithm, request)
		if err != nil {
			return s.fail(ctx, err)
		}
		all[algorithm.String()] = response
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	algorithms := make([]responses.AlgorithmResponse, 0, len(schedulers.Algorithms))
	for _, a := range schedulers.Algorithms {
		algorithms = append(algorithms, responses.AlgorithmResponse{
			ID:           a.String(),
			Label:        a.Label(),
			NeedsQuantum: a.NeedsQuantum(),
		})
	}
	return ctx.JSON(algorithms)
}

func (s *SchedulerHandlerImpl) HealthCheck(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"version":   Version,
	})
}

func (s *SchedulerHandlerImpl) scheduleWith(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	return s.respond(ctx, algorithm, request)
}

func (s *SchedulerHandlerImpl) respond(ctx *fiber.Ctx, algorithm schedulers.Algorithm, request *requests.ScheduleRequest) error {
	response, err := s.run(ctx.UserContext(), algorithm, request)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) run(ctx context.Context, algorithm schedulers.Algorithm, request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	_, span := tracing.StartSpan(ctx, "schedule "+algorithm.String())
	defer span.End()
	span.SetString("algorithm", algorithm.String())

	processes, err := request.ToProcesses()
	if err == nil {
		err = schedulers.CheckLimits(processes, s.limits)
	}
	if err != nil {
		span.SetStatus(err)
		return responses.ScheduleResponse{}, err
	}
	span.SetInt("processes", len(processes))

	timeQuantum := request.TimeQuantum.Or(s.config.RoundRobinTimeQuantum)
	result, err := schedulers.Schedule(algorithm, timeQuantum, processes)
	span.SetStatus(err)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	s.logger.Debug("schedule computed",
		"algorithm", algorithm.String(),
		"processes", len(processes),
		"totalTime", result.Metric.TotalTime)
	return responses.NewScheduleResponse(result), nil
}

// fail answers validation errors with 400 and hands everything else to the app error handler.
func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	if core.IsValidationError(err) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return err
}

// parseRequest decodes the body as JSON whatever the Content-Type, since the GUI does not always send one.
func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.App().Config().JSONDecoder(ctx.Body(), &request); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format: "+err.Error())
	}
	return &request, nil
}
