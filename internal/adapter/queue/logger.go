package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// decodeTask unmarshals a task's JSON payload into dst.
func decodeTask(task *asynq.Task, dst any) error {
	if err := json.Unmarshal(task.Payload(), dst); err != nil {
		return fmt.Errorf("%w: decode %s payload: %v", asynq.SkipRetry, task.Type(), err)
	}
	return nil
}

// zerologAdapter satisfies asynq.Logger on top of zerolog, the way the
// rest of the gateway logs (§ambient logging stack).
type zerologAdapter struct {
	logger zerolog.Logger
}

func (z zerologAdapter) Debug(args ...any) { z.logger.Debug().Msg(fmt.Sprint(args...)) }
func (z zerologAdapter) Info(args ...any)  { z.logger.Info().Msg(fmt.Sprint(args...)) }
func (z zerologAdapter) Warn(args ...any)  { z.logger.Warn().Msg(fmt.Sprint(args...)) }
func (z zerologAdapter) Error(args ...any) { z.logger.Error().Msg(fmt.Sprint(args...)) }
func (z zerologAdapter) Fatal(args ...any) { z.logger.Fatal().Msg(fmt.Sprint(args...)) }
