package handler

import (
	"ichipets/upstream"

	"github.com/gin-gonic/gin"
)

// formFile 取出一个可选的上传文件，未携带时返回 nil
func formFile(c *gin.Context, field string) (*upstream.FilePart, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// 未携带该文件，或请求不是 multipart
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return &upstream.FilePart{Field: field, Name: fh.Filename, Reader: f}, nil
}

// formFiles 取出同名的全部上传文件
func formFiles(c *gin.Context, field string) ([]upstream.FilePart, error) {
	mf, err := c.MultipartForm()
	if err != nil || mf == nil {
		return nil, nil
	}
	var parts []upstream.FilePart
	for _, fh := range mf.File[field] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		parts = append(parts, upstream.FilePart{Field: field, Name: fh.Filename, Reader: f})
	}
	return parts, nil
}
