// Package reminder e-mails event participants before events that have a reminder set.
package reminder
