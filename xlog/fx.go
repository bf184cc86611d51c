package xlog

import (
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var _ fxevent.Logger = (*FxXLogger)(nil)

// FxXLogger prints the fx lifecycle events as the "Fx" component.
type FxXLogger struct {
	logger XLogger
}

func (l *FxXLogger) LogEvent(event fxevent.Event) {
	if l == nil || l.logger == nil {
		return
	}

	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		l.logger.Debug("hook start executing",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStartExecuted:
		l.hookExecuted("start", e.FunctionName, e.CallerName, e.Runtime.Milliseconds(), e.Err)
	case *fxevent.OnStopExecuting:
		l.logger.Debug("hook stop executing",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStopExecuted:
		l.hookExecuted("stop", e.FunctionName, e.CallerName, e.Runtime.Milliseconds(), e.Err)
	case *fxevent.Supplied:
		l.typesApplied("supplied", []string{e.TypeName}, e.ModuleName, e.StackTrace, e.Err)
	case *fxevent.Provided:
		l.typesApplied("provided", e.OutputTypeNames, e.ModuleName, e.StackTrace, e.Err)
	case *fxevent.Replaced:
		l.typesApplied("replaced", e.OutputTypeNames, e.ModuleName, e.StackTrace, e.Err)
	case *fxevent.Decorated:
		l.typesApplied("decorated", e.OutputTypeNames, e.ModuleName, e.StackTrace, e.Err)
	case *fxevent.Invoking:
		l.logger.Debug("invoking",
			zap.String("function", e.FunctionName),
			zap.String("module", e.ModuleName),
		)
	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.Error(e.Err, "invoke failed",
				zap.String("function", e.FunctionName),
				zap.String("trace", e.Trace),
			)
		}
	case *fxevent.Stopping:
		l.logger.Info("stopping", zap.String("signal", e.Signal.String()))
	case *fxevent.Stopped:
		if e.Err != nil {
			l.logger.Error(e.Err, "stop failed")
		}
	case *fxevent.RollingBack:
		l.logger.Error(e.StartErr, "start failed, rolling back")
	case *fxevent.RolledBack:
		if e.Err != nil {
			l.logger.Error(e.Err, "roll back failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.logger.Error(e.Err, "start failed")
		} else {
			l.logger.Debug("running")
		}
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.logger.Error(e.Err, "custom logger initialization failed")
		} else {
			l.logger.Debug("custom logger initialized", zap.String("constructor", e.ConstructorName))
		}
	default:
	}
}

func (l *FxXLogger) hookExecuted(hook, fn, caller string, ms int64, err error) {
	fields := []zap.Field{
		zap.String("hook", hook),
		zap.String("function", fn),
		zap.String("caller", caller),
		zap.Int64("ms", ms),
	}
	if err != nil {
		l.logger.Error(err, "hook failed", fields...)
		return
	}
	l.logger.Debug("hook executed", fields...)
}

func (l *FxXLogger) typesApplied(action string, types []string, module string, stack []string, err error) {
	if err != nil {
		l.logger.Error(err, action+" failed",
			zap.Strings("types", types),
			zap.Strings("stacktrace", stack),
		)
		return
	}
	l.logger.Debug(action,
		zap.Strings("types", types),
		zap.String("module", module),
	)
}

func NewFxXLogger(logger XLogger) *FxXLogger {
	return &FxXLogger{
		logger: newComponentXLogger(logger, "Fx"),
	}
}
