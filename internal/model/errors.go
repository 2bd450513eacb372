package model

import "errors"

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")

// Scheduling rejections. The api layer maps each of these to its own status
// code, so they must stay distinguishable with errors.Is.
var ErrTimeNotAvailable = errors.New("requested time is not available")
var ErrMeetingCreation = errors.New("meeting could not be created")
var ErrGateConditionNotValid = errors.New("gate condition not satisfied")
var ErrAllMeetingSlotsUsed = errors.New("all meeting slots used")
var ErrTransactionRequired = errors.New("payment transaction required")
var ErrMeetingChangeConflict = errors.New("meeting changed concurrently")
