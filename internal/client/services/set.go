package services

import "github.com/dmitrijs2005/salesdesk/internal/logging"

// Set bundles every service over one sender.
type Set struct {
	Auth      AuthService
	Prospects *Prospects
	Sales     *Sales
	Users     *Users
	Teams     *Teams
	Payouts   *Payouts
	CallLogs  *CallLogs
	Transfers *Transfers
	Reports   *Reports
}

func NewSet(s Sender, log logging.Logger) *Set {
	return &Set{
		Auth:      NewAuthService(s, log),
		Prospects: NewProspects(s, log),
		Sales:     NewSales(s, log),
		Users:     NewUsers(s, log),
		Teams:     NewTeams(s, log),
		Payouts:   NewPayouts(s, log),
		CallLogs:  NewCallLogs(s, log),
		Transfers: NewTransfers(s, log),
		Reports:   NewReports(s, log),
	}
}
