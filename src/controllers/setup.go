package controllers

import (
	"Backend-EventEase/src/services/auth"
	"Backend-EventEase/src/services/checkin"
	"Backend-EventEase/src/services/exports"
	"Backend-EventEase/src/services/participants"
	"Backend-EventEase/src/services/stats"
	"Backend-EventEase/src/services/volunteers"
)

var (
	participantService *participants.Service
	volunteerService   *volunteers.Service
	checkinService     *checkin.Service
	statsService       *stats.Service
	exportService      *exports.Service
	authService        *auth.Service
)

// Init wires the controllers to the services built in main.
func Init(
	ps *participants.Service,
	vs *volunteers.Service,
	cs *checkin.Service,
	ss *stats.Service,
	es *exports.Service,
	as *auth.Service,
) {
	participantService = ps
	volunteerService = vs
	checkinService = cs
	statsService = ss
	exportService = es
	authService = as
}
