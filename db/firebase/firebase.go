// Package firebase creates the firebase app shared by auth and the firestore document store.
package firebase

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"streamsphere/configs"
)

type App struct {
	app *firebase.App
}

func NewApp(ctx context.Context) (*App, error) {
	var opts []option.ClientOption
	if f := configs.GetConfigs().FirebaseCredentialsFile; f != "" {
		opts = append(opts, option.WithCredentialsFile(f))
	}
	conf := &firebase.Config{ProjectID: configs.GetConfigs().FirebaseProjectId}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, err
	}
	return &App{app: app}, nil
}

func (a *App) Auth(ctx context.Context) (*auth.Client, error) {
	return a.app.Auth(ctx)
}

func (a *App) Firestore(ctx context.Context) (*firestore.Client, error) {
	return a.app.Firestore(ctx)
}
