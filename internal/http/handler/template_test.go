package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proofcheck.app/server/internal/engine"
	"proofcheck.app/server/internal/http/handler"
	"proofcheck.app/server/internal/model"
	"proofcheck.app/server/internal/store"
)

var _ = Describe("TemplateHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTemplateService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockTemplateService{}
		h := handler.NewTemplateHandler(svc)

		router.POST("/templates", h.Create)
		router.GET("/templates", h.List)
		router.GET("/templates/:id", h.GetByID)
		router.DELETE("/templates/:id", h.Archive)
	})

	It("creates a template", func() {
		svc.createFn = func(_ context.Context, name, htmlContent string, meta engine.Metadata, filename string) (*model.EmailTemplate, error) {
			Expect(name).To(Equal("welcome"))
			Expect(filename).To(Equal("welcome.html"))
			Expect(meta.Subject).To(Equal("Welcome aboard"))
			return &model.EmailTemplate{
				ID:          42,
				Name:        name,
				Status:      model.TemplateStatusActive,
				HTMLContent: htmlContent,
				Metadata:    meta,
				CreatedAt:   time.Now(),
			}, nil
		}

		body, _ := json.Marshal(map[string]any{
			"name":         "welcome",
			"html_content": "<html><body>hi</body></html>",
			"metadata":     map[string]string{"subject": "Welcome aboard"},
			"filename":     "welcome.html",
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/templates", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["id"]).To(Equal("42"))
		Expect(resp["name"]).To(Equal("welcome"))
		Expect(resp["status"]).To(Equal("active"))
	})

	It("rejects a body without html content", func() {
		body, _ := json.Marshal(map[string]any{"name": "welcome"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/templates", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("lists templates with a custom limit", func() {
		var gotLimit int32
		svc.listFn = func(_ context.Context, limit int32) ([]model.EmailTemplate, error) {
			gotLimit = limit
			return []model.EmailTemplate{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nil
		}

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/templates?limit=5", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotLimit).To(Equal(int32(5)))

		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
	})

	It("rejects an invalid limit", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/templates?limit=zero", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for a missing template", func() {
		svc.getFn = func(_ context.Context, _ int64) (*model.EmailTemplate, error) {
			return nil, store.ErrNotFound
		}

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/templates/99", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("rejects a non-numeric template id", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/templates/abc", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("archives a template", func() {
		var archived int64
		svc.archiveFn = func(_ context.Context, id int64) error {
			archived = id
			return nil
		}

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/templates/7", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(archived).To(Equal(int64(7)))
	})

	It("maps service failures to 500", func() {
		svc.listFn = func(_ context.Context, _ int32) ([]model.EmailTemplate, error) {
			return nil, errors.New("db down")
		}

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/templates", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
