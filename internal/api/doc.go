// Package api provides the typed client for the status board REST API.
//
// The backend exposes environments, posts and comments under a single base
// path (default http://localhost:8080/api) plus a small auth surface:
//
//	POST   /auth/login                  {username,password} -> {username,role,token}
//	POST   /auth/register               {username,password,role} -> text
//	POST   /auth/change-password        {username,oldPassword,newPassword} -> text
//	GET    /environments                -> []Environment
//	POST   /environments                {name,status,solutionName}
//	PUT    /environments/{id}           {name,status,solutionName}
//	DELETE /environments/{id}
//	GET    /posts/environment/{envId}   -> []Post
//	POST   /posts                       {title,description,type,environmentId,createdBy}
//	DELETE /posts/{id}
//	GET    /posts/{id}/comments         -> []Comment
//	POST   /posts/{id}/comments         {text,author}
//	DELETE /comments/{id}
//
// Mutating requests carry X-Role and X-User headers built from an Identity.
// These headers are advisory: the server decides what the caller may do.
//
// Any non-2xx response becomes a *RequestError whose message is the response
// body text, or a per-operation fallback when the body is empty. Login is the
// exception and fails with ErrInvalidCredentials. Nothing is retried.
//
// Consumers depend on the BoardAPI interface; *Client is the HTTP implementation.
package api
