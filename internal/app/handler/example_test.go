package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/app/handler"
	"github.com/atinyakov/go-url-redirector/internal/app/service"
	"github.com/atinyakov/go-url-redirector/internal/storage"
)

func ExamplePostHandler_CreateURL() {
	mem, _ := storage.CreateMemoryStorage()
	h := handler.NewPost(service.NewURL(mem, mem, zap.NewNop()), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/urls/url", bytes.NewBufferString(`{"url":"https://example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.CreateURL(rec, req)

	var created storage.URLRecord
	_ = json.NewDecoder(rec.Body).Decode(&created)
	fmt.Println(rec.Code, created.URL, created.IsDeleted)
	// Output: 201 https://example.com false
}

func ExampleGetHandler_Redirect() {
	mem, _ := storage.CreateMemoryStorage()
	rec, _ := mem.Create(context.Background(), storage.URLCreate{URL: "https://example.com/landing"})

	urls := service.NewURL(mem, mem, zap.NewNop())
	h := handler.NewGet(urls, service.NewStatus(mem), service.NewResolver(mem, mem, zap.NewNop(), nil), zap.NewNop())

	r := chi.NewRouter()
	r.Get("/{id}", h.Redirect)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://localhost/"+rec.ID.String(), nil))

	statuses, _ := mem.ListStatuses(context.Background(), storage.StatusFilter{}, storage.DefaultPage())
	fmt.Println(w.Code, w.Header().Get("Location"), len(statuses), statuses[0].Host)
	// Output: 307 https://example.com/landing 1 localhost
}
