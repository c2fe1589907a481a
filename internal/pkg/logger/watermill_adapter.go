package logger

import "github.com/ThreeDotsLabs/watermill"

// WatermillAdapter routes watermill's internal logs through ILogger.
type WatermillAdapter struct {
	logger ILogger
	module string
	fields watermill.LogFields
	debug  bool
}

var _ watermill.LoggerAdapter = &WatermillAdapter{}

// NewWatermillAdapter drops debug and trace output unless debug is set.
func NewWatermillAdapter(logger ILogger, module string, debug bool) *WatermillAdapter {
	return &WatermillAdapter{logger: logger, module: module, debug: debug}
}

func (a *WatermillAdapter) Error(msg string, err error, fields watermill.LogFields) {
	details := a.details(fields)
	if err != nil {
		details["error"] = err.Error()
	}
	a.logger.Error(a.module, msg, details)
}

func (a *WatermillAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Info(a.module, msg, a.details(fields))
}

func (a *WatermillAdapter) Debug(msg string, fields watermill.LogFields) {
	if a.debug {
		a.logger.Debug(a.module, msg, a.details(fields))
	}
}

func (a *WatermillAdapter) Trace(msg string, fields watermill.LogFields) {
	a.Debug(msg, fields)
}

func (a *WatermillAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &WatermillAdapter{
		logger: a.logger,
		module: a.module,
		fields: a.fields.Add(fields),
		debug:  a.debug,
	}
}

func (a *WatermillAdapter) details(fields watermill.LogFields) map[string]interface{} {
	details := make(map[string]interface{}, len(a.fields)+len(fields))
	for k, v := range a.fields {
		details[k] = v
	}
	for k, v := range fields {
		details[k] = v
	}
	return details
}
