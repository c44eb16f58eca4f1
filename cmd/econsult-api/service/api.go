// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package service wires the gateway HTTP API onto the workflow orchestrators.
package service

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/internal/middleware"
	internalService "github.com/econsultation/econsultation-service/internal/service"
)

// API serves the gateway routes
type API struct {
	draftReader    internalService.DraftReader
	draftWriter    internalService.DraftWriter
	requestReader  internalService.CommentRequestReader
	requestWriter  internalService.CommentRequestWriter
	assignments    internalService.CommenterAssignmentWriter
	reflections    internalService.ReflectionWriter
	directory      internalService.DirectoryReader
	directoryAdmin internalService.DirectoryWriter
	readiness      map[string]func(context.Context) error
	requestTimeout time.Duration
	maxBodyBytes   int64
}

// apiOption defines a function type for setting options
type apiOption func(*API)

// WithReadinessChecks sets the dependencies checked by /readyz
func WithReadinessChecks(checks map[string]func(context.Context) error) apiOption {
	return func(a *API) {
		a.readiness = checks
	}
}

// WithRequestTimeout bounds every request
func WithRequestTimeout(timeout time.Duration) apiOption {
	return func(a *API) {
		a.requestTimeout = timeout
	}
}

// WithMaxBodyBytes caps request bodies
func WithMaxBodyBytes(limit int64) apiOption {
	return func(a *API) {
		a.maxBodyBytes = limit
	}
}

// NewAPI builds the orchestrators over one backend and one notification channel
func NewAPI(backend port.Backend, notifier port.Notifier, metrics *internalService.WorkflowMetrics, opts ...apiOption) *API {
	a := &API{
		draftReader: internalService.NewDraftReaderOrchestrator(
			internalService.WithDraftReader(backend),
		),
		draftWriter: internalService.NewDraftWriterOrchestrator(
			internalService.WithDraftReader(backend),
			internalService.WithDraftWriter(backend),
		),
		requestReader: internalService.NewCommentRequestReaderOrchestrator(
			internalService.WithCommentRequestReader(backend),
		),
		requestWriter: internalService.NewCommentRequestWriterOrchestrator(
			internalService.WithCommentRequestWriter(backend),
			internalService.WithCommentRequestWriterReader(backend),
			internalService.WithCommentRequestNotifier(notifier),
			internalService.WithCommentRequestMetrics(metrics),
		),
		assignments: internalService.NewCommenterAssignmentWriterOrchestrator(
			internalService.WithAssignmentWriter(backend),
			internalService.WithAssignmentReader(backend),
			internalService.WithAssignmentRequestReader(backend),
			internalService.WithAssignmentDirectory(backend),
			internalService.WithAssignmentNotifier(notifier),
			internalService.WithAssignmentMetrics(metrics),
		),
		reflections: internalService.NewReflectionWriterOrchestrator(
			internalService.WithReflectionWriter(backend),
			internalService.WithReflectionReader(backend),
			internalService.WithReflectionAssignmentReader(backend),
			internalService.WithReflectionRequestReader(backend),
		),
		directory: internalService.NewDirectoryReaderOrchestrator(
			internalService.WithDirectory(backend),
		),
		directoryAdmin: internalService.NewDirectoryWriterOrchestrator(
			internalService.WithDirectoryWriter(backend),
			internalService.WithDirectoryWriterReader(backend),
		),
		readiness: map[string]func(context.Context) error{
			"backend": backend.IsReady,
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handler returns the routed gateway handler. Every /v1 route is
// authenticated; each one then requires a single capability.
func (a *API) Handler(authenticator port.Authenticator) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, r, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.HandleFunc("/livez", a.livez).Methods(http.MethodGet)
	router.HandleFunc("/readyz", a.readyz).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.Use(
		middleware.AuthenticationMiddleware(authenticator),
		middleware.BodyLimitMiddleware(a.maxBodyBytes),
	)
	route := func(method, path string, capability model.Capability, handler http.HandlerFunc) {
		v1.Handle(path, middleware.RequireCapability(capability)(handler)).Methods(method)
	}

	route(http.MethodGet, "/drafts", model.CapDraftsBrowse, a.listDrafts)
	route(http.MethodGet, "/drafts/{id}", model.CapDraftsBrowse, a.getDraft)
	route(http.MethodPut, "/drafts/{id}", model.CapDraftsEdit, a.updateDraft)
	route(http.MethodPost, "/drafts/{id}/opening-rejections", model.CapDraftsApprove, a.rejectCommentOpening)
	route(http.MethodGet, "/drafts/{id}/comment-requests", model.CapRequestsView, a.listCommentRequests)
	route(http.MethodPost, "/drafts/{id}/invitations/institutions", model.CapRequestsInvite, a.inviteInstitutions)
	route(http.MethodPost, "/drafts/{id}/invitations/people", model.CapRequestsInvite, a.invitePeople)

	route(http.MethodGet, "/comment-requests/{id}", model.CapRequestsView, a.getCommentRequest)
	route(http.MethodPost, "/comment-requests/{id}/accept", model.CapRequestsDecide, a.acceptCommentRequest)
	route(http.MethodPost, "/comment-requests/{id}/reject", model.CapRequestsDecide, a.rejectCommentRequest)
	route(http.MethodGet, "/comment-requests/{id}/commenters", model.CapRequestsView, a.getAssignment)
	route(http.MethodPost, "/comment-requests/{id}/commenters", model.CapRequestsAssign, a.assignCommenters)
	route(http.MethodGet, "/comment-requests/{id}/reflections", model.CapReflectionsSubmit, a.listReflections)
	route(http.MethodPost, "/comment-requests/{id}/reflections", model.CapReflectionsSubmit, a.submitReflection)

	route(http.MethodGet, "/institutions", model.CapDirectoryRead, a.listInstitutions)
	route(http.MethodPost, "/institutions", model.CapDirectoryManage, a.createInstitution)
	route(http.MethodGet, "/institutions/{id}/users", model.CapUsersManage, a.listInstitutionUsers)
	route(http.MethodGet, "/regions", model.CapDirectoryRead, a.listRegions)
	route(http.MethodPut, "/regions/{id}", model.CapDirectoryManage, a.updateRegion)
	route(http.MethodGet, "/sectors", model.CapDirectoryRead, a.listSectors)
	route(http.MethodGet, "/commenters", model.CapRequestsAssign, a.listCommenters)
	route(http.MethodPost, "/users", model.CapUsersManage, a.createUser)
	route(http.MethodPut, "/users/{id}", model.CapUsersManage, a.updateUser)

	// any authenticated principal may ask which views it can enter
	v1.HandleFunc("/views/{resource}", a.resolveView).Methods(http.MethodGet)

	return middleware.RequestIDMiddleware()(middleware.TimeoutMiddleware(a.requestTimeout)(router))
}
