// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

func (a *API) listInstitutions(w http.ResponseWriter, r *http.Request) {
	institutions, err := a.directory.ListInstitutions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, listEnvelope{Data: institutions, Total: len(institutions)}, "")
}

func (a *API) listInstitutionUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.directory.ListUsersByInstitution(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, listEnvelope{Data: users, Total: len(users)}, "")
}

func (a *API) listRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := a.directory.ListRegions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, listEnvelope{Data: regions, Total: len(regions)}, "")
}

func (a *API) listSectors(w http.ResponseWriter, r *http.Request) {
	sectors, err := a.directory.ListSectors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, listEnvelope{Data: sectors, Total: len(sectors)}, "")
}

func (a *API) listCommenters(w http.ResponseWriter, r *http.Request) {
	commenters, err := a.directory.ListCommenters(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, listEnvelope{Data: commenters, Total: len(commenters)}, "")
}

func (a *API) createInstitution(w http.ResponseWriter, r *http.Request) {
	var payload institutionPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	institution, err := a.directoryAdmin.CreateInstitution(r.Context(), payload.toModel())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusCreated, institution, "Institution created.")
}

func (a *API) updateRegion(w http.ResponseWriter, r *http.Request) {
	var payload regionPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	region, err := a.directoryAdmin.UpdateRegion(r.Context(), &model.Region{ID: mux.Vars(r)["id"], Name: payload.Name})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, region, "Region updated.")
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	var payload userPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := a.directoryAdmin.CreateUser(r.Context(), payload.toModel(""))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusCreated, user, "User created.")
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request) {
	var payload userPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := a.directoryAdmin.UpdateUser(r.Context(), payload.toModel(mux.Vars(r)["id"]))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, user, "User updated.")
}
