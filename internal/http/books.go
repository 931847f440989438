package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/validation"
)

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{
		store: store,
	}
}

func (controller *BooksController) CreateBook(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	req, res, err := validation.DecodeCreate(body)
	if err != nil {
		respondInternalError(c, err, "decode create request")
		return
	}
	if !res.Valid() {
		respondValidationError(c, res)
		return
	}

	book := req.Book()
	if err := controller.store.Create(c.Request.Context(), book); err != nil {
		if errors.Is(err, books.ErrDuplicateISBN) {
			respondConflict(c, fmt.Sprintf("book with isbn %s already exists", book.ISBN), CodeDuplicateISBN)
			return
		}
		respondInternalError(c, err, "create book")
		return
	}

	c.Header("Location", "/books/"+book.ISBN)
	respondCreated(c, gin.H{"book": book})
}

func (controller *BooksController) GetAllBooks(c *gin.Context) {
	list, err := controller.store.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": list, "count": len(list)})
}

func (controller *BooksController) GetBook(c *gin.Context) {
	book, err := controller.store.Get(c.Request.Context(), c.Param("isbn"))
	if errors.Is(err, books.ErrNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"book": book})
}

// UpdateBook applies a partial update. Fields absent from the body keep
// their stored values.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	patch, res, err := validation.DecodeUpdate(body)
	if err != nil {
		respondInternalError(c, err, "decode update request")
		return
	}
	if !res.Valid() {
		respondValidationError(c, res)
		return
	}

	book, err := controller.store.Update(c.Request.Context(), c.Param("isbn"), patch)
	if errors.Is(err, books.ErrNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "update book")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"book": book})
}

func (controller *BooksController) DeleteBook(c *gin.Context) {
	err := controller.store.Delete(c.Request.Context(), c.Param("isbn"))
	if errors.Is(err, books.ErrNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	respondSuccess(c, "Book deleted")
}

// Schema publishes the JSON Schema documents request bodies are checked against.
func (controller *BooksController) Schema(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"create": validation.CreateSchema(),
		"update": validation.UpdateSchema(),
	})
}
