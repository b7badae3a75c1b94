// Package config provides configuration management for statusboard.
//
// Configuration is layered. Later layers override earlier ones:
//
//  1. Built-in defaults (GetDefaultConfig)
//  2. User configuration (~/.config/statusboard/config.yaml)
//  3. Project configuration (./.statusboard/config.yaml)
//  4. Environment variables, optionally read from a .env file in the working directory
//
// Command line flags are applied on top by the cmd package.
//
// # Configuration Structure
//
//	api:
//	  baseURL: "http://localhost:8080/api"
//	  timeout: 15s
//	auth:
//	  serverLogout: false
//	  logoutPath: "/auth/logout"
//	ui:
//	  dateFormat: "2006-01-02 15:04"
//	  statusMessageSeconds: 4
//	  logLevel: "info"
//
// # Environment Variables
//
//   - STATUSBOARD_API_URL overrides api.baseURL
//   - STATUSBOARD_TIMEOUT overrides api.timeout (Go duration syntax)
//   - STATUSBOARD_LOG_LEVEL overrides ui.logLevel
//
// # Logout
//
// The backend has no documented token invalidation endpoint. By default logout
// only discards the client-side session. Setting auth.serverLogout makes the
// client POST to auth.logoutPath first; a failure there is logged and does not
// block the local logout.
package config
