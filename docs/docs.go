// Package docs holds the swagger document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/": {
			"get": {
				"tags": [
					"System"
				],
				"summary": "Show the status of server.",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKModel"
						}
					}
				}
			}
		},
		"/v1/auth/guest": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Guest Token",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				}
			}
		},
		"/v1/auth/signup": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Sign Up",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"parameters": [
					{
						"name": "user",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.SignUpReq"
						}
					}
				]
			}
		},
		"/v1/auth/signin": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Sign In",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"parameters": [
					{
						"name": "user",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.SignInReq"
						}
					}
				]
			}
		},
		"/v1/auth/signout": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Sign Out",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/catalog/{page}": {
			"get": {
				"tags": [
					"Catalog"
				],
				"summary": "Catalog Page",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "path",
						"required": true,
						"type": "string"
					}
				]
			}
		},
		"/v1/discover/{mediaType}/{genreId}": {
			"get": {
				"tags": [
					"Catalog"
				],
				"summary": "Discover",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"parameters": [
					{
						"name": "mediaType",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "genreId",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				]
			}
		},
		"/v1/media/play": {
			"post": {
				"tags": [
					"Catalog"
				],
				"summary": "Play Media",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"parameters": [
					{
						"name": "media",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.MediaItem"
						}
					}
				]
			}
		},
		"/v1/search": {
			"get": {
				"tags": [
					"Search"
				],
				"summary": "Search",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					}
				},
				"parameters": [
					{
						"name": "q",
						"in": "query",
						"required": true,
						"type": "string"
					}
				]
			}
		},
		"/v1/search/live": {
			"get": {
				"tags": [
					"Search"
				],
				"summary": "Live Search (websocket)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"426": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				}
			}
		},
		"/v1/mylist": {
			"get": {
				"tags": [
					"My-List"
				],
				"summary": "My List",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "X-Guest-Token",
						"in": "header",
						"required": false,
						"type": "string"
					}
				]
			},
			"post": {
				"tags": [
					"My-List"
				],
				"summary": "Add To My List",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "X-Guest-Token",
						"in": "header",
						"required": false,
						"type": "string"
					},
					{
						"name": "media",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.MediaItem"
						}
					}
				]
			}
		},
		"/v1/mylist/{mediaType}/{id}": {
			"delete": {
				"tags": [
					"My-List"
				],
				"summary": "Remove From My List",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "X-Guest-Token",
						"in": "header",
						"required": false,
						"type": "string"
					},
					{
						"name": "mediaType",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				]
			}
		},
		"/v1/mylist/status/{mediaType}/{id}": {
			"get": {
				"tags": [
					"My-List"
				],
				"summary": "My List Status",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "X-Guest-Token",
						"in": "header",
						"required": false,
						"type": "string"
					},
					{
						"name": "mediaType",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				]
			}
		},
		"/v1/recommendations": {
			"get": {
				"tags": [
					"Recommendations"
				],
				"summary": "Recommendations",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "X-Guest-Token",
						"in": "header",
						"required": false,
						"type": "string"
					}
				]
			}
		},
		"/v1/recommendations/refresh": {
			"post": {
				"tags": [
					"Recommendations"
				],
				"summary": "Refresh Recommendations",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"429": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "X-Guest-Token",
						"in": "header",
						"required": false,
						"type": "string"
					}
				]
			}
		},
		"/v1/user/profile": {
			"get": {
				"tags": [
					"User"
				],
				"summary": "Profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"User"
				],
				"summary": "Update Profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "profile",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.UpdateProfileReq"
						}
					}
				]
			}
		},
		"/v1/user/username/check": {
			"get": {
				"tags": [
					"User"
				],
				"summary": "Check Username",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "username",
						"in": "query",
						"required": true,
						"type": "string"
					}
				]
			}
		},
		"/v1/user/history/viewing": {
			"get": {
				"tags": [
					"User"
				],
				"summary": "Viewing History",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/user/history/search": {
			"get": {
				"tags": [
					"User"
				],
				"summary": "Search History",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/plans": {
			"get": {
				"tags": [
					"Plans"
				],
				"summary": "Plans",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					}
				}
			}
		},
		"/v1/plans/activate": {
			"post": {
				"tags": [
					"Plans"
				],
				"summary": "Activate Plan",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "plan",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.ActivatePlanReq"
						}
					}
				]
			}
		},
		"/v1/plans/activations": {
			"get": {
				"tags": [
					"Plans"
				],
				"summary": "Plan Activations",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKWithDataModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/admin/fetch_configs": {
			"get": {
				"tags": [
					"Admin"
				],
				"summary": "Fetch Configs",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResponseOKModel"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ResponseErrorModel"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"response.ResponseOKModel": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"errorMessage": {
					"type": "string"
				}
			}
		},
		"response.ResponseOKWithDataModel": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"data": {},
				"errorMessage": {
					"type": "string"
				}
			}
		},
		"response.ResponseErrorModel": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"errorMessage": {}
			}
		},
		"model.MediaItem": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"backdropPath": {
					"type": "string"
				},
				"rating": {
					"type": "string"
				},
				"duration": {
					"type": "string"
				},
				"genres": {
					"type": "string"
				},
				"overview": {
					"type": "string"
				},
				"mediaType": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				}
			}
		},
		"model.SignUpReq": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"confirmPassword": {
					"type": "string"
				},
				"displayName": {
					"type": "string"
				}
			}
		},
		"model.SignInReq": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"model.UserPreferences": {
			"type": "object",
			"properties": {
				"language": {
					"type": "string"
				},
				"maturityRating": {
					"type": "string"
				}
			}
		},
		"model.UpdateProfileReq": {
			"type": "object",
			"properties": {
				"displayName": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"preferences": {
					"$ref": "#/definitions/model.UserPreferences"
				}
			}
		},
		"model.ActivatePlanReq": {
			"type": "object",
			"properties": {
				"plan": {
					"type": "string"
				},
				"paymentRef": {
					"type": "string"
				},
				"walletAddress": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the firebase id token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "StreamSphere",
	Description:      "Catalog, my list, search, recommendations and account api of StreamSphere.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
