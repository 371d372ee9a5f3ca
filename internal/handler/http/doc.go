// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware of the JSON API:
// signup, email activation, login and logout, the dashboard and profile
// pages. Cross-cutting concerns such as authentication, request tracing,
// access logging and metrics are handled in this package before requests are
// delegated to the service layer.
package http
