package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/ducnmm/studyvault/internal/container"
	"github.com/ducnmm/studyvault/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:       c.UserContainer.Handler,
		DocumentHandler:   c.DocumentContainer.Handler,
		RecallHandler:     c.RecallContainer.Handler,
		StudyModeHandler:  c.StudyModeContainer.Handler,
		FocusLockHandler:  c.FocusLockContainer.Handler,
		WorkspaceHandler:  c.WorkspaceContainer.Handler,
		GoalBundleHandler: c.GoalBundleContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(r).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
