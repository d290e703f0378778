// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"crypto/rand"
	"fmt"
	"log"
)

// Severity is a syslog-style message severity
type Severity int

// Supported log severities
const (
	ERROR Severity = iota
	ALERT
	NOTICE
	INFO
	DEBUG
)

var severityNames = map[Severity]string{
	ERROR:  "ERROR",
	ALERT:  "ALERT",
	NOTICE: "NOTICE",
	INFO:   "INFO",
	DEBUG:  "DEBUG",
}

// LogContext is the context for log messages produced during an operation
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext for operations with no richer context available
type BasicLogContext struct {
	sessionID string
}

// AppName returns the application name
func (c *BasicLogContext) AppName() string {
	return "fishpond-validator"
}

// SessionID returns a session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

// LogAuditInput is the set of inputs for an audit log message
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

// LogAudit writes an audit-formatted message for an actor/action/actee triple
func LogAudit(ctx LogContext, input LogAuditInput) {
	log.Printf("[%s] %s session=%s actor=%s action=%s actee=%s :: %s",
		severityNames[input.Severity], ctx.AppName(), ctx.SessionID(), input.Actor, input.Action, input.Actee, input.Message)
}

// LogInfo writes an informational message
func LogInfo(ctx LogContext, message string) {
	log.Printf("[%s] %s session=%s :: %s", severityNames[INFO], ctx.AppName(), ctx.SessionID(), message)
}

// LogAlert writes a message for a condition that needs attention but is not fatal
func LogAlert(ctx LogContext, message string) {
	log.Printf("[%s] %s session=%s :: %s", severityNames[ALERT], ctx.AppName(), ctx.SessionID(), message)
}

// LogSimpleErr logs a message and its underlying error, returning an error
// wrapping both for the caller to propagate
func LogSimpleErr(ctx LogContext, message string, err error) error {
	result := Error{LogMsg: message + " " + err.Error(), SimpleMsg: message}
	return result.Log(ctx, "")
}

// Error is a richly annotated error for logging and later inspection
type Error struct {
	LogMsg     string
	SimpleMsg  string
	Response   string
	URL        string
	HTTPStatus int
}

// Error implements the error interface; the simple message wins when present
func (e Error) Error() string {
	if e.SimpleMsg != "" {
		return e.SimpleMsg
	}
	return e.LogMsg
}

// Log writes the full error detail to the log and returns the error itself
func (e Error) Log(ctx LogContext, prefix string) error {
	message := e.LogMsg
	if prefix != "" {
		message = prefix + ": " + message
	}
	if e.URL != "" {
		message += fmt.Sprintf("; url=%s", e.URL)
	}
	if e.HTTPStatus != 0 {
		message += fmt.Sprintf("; status=%d", e.HTTPStatus)
	}
	if e.Response != "" {
		message += "\nresponse: " + e.Response
	}
	log.Printf("[%s] %s session=%s :: %s", severityNames[ERROR], ctx.AppName(), ctx.SessionID(), message)
	return e
}

// HTTPErr is an error carrying an HTTP status code
type HTTPErr struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e HTTPErr) Error() string {
	return e.Message
}

// PsuUUID generates a pseudo-random UUID-shaped string
func PsuUUID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:]), nil
}
