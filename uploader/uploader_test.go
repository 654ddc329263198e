// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package uploader_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/config/core"
	"github.com/ChainSafe/nft-bridge/uploader"
	mock_uploader "github.com/ChainSafe/nft-bridge/uploader/mock"
)

const cid = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

type URITestSuite struct {
	suite.Suite
}

func TestRunURITestSuite(t *testing.T) {
	suite.Run(t, new(URITestSuite))
}

func (s *URITestSuite) Test_ExtractCID() {
	s.Equal(cid, uploader.ExtractCID("ipfs://"+cid))
	s.Equal(cid, uploader.ExtractCID("https://ipfs.io/ipfs/"+cid))
	s.Equal("", uploader.ExtractCID("https://example.com/metadata/1.json"))
}

func (s *URITestSuite) Test_IsIPFSURI() {
	s.True(uploader.IsIPFSURI("ipfs://" + cid))
	s.True(uploader.IsIPFSURI("https://dweb.link/ipfs/" + cid))
	s.False(uploader.IsIPFSURI("https://example.com/1.json"))
}

func (s *URITestSuite) Test_RedundantGateways() {
	urls := uploader.RedundantGateways([]string{"https://ipfs.io/", "https://dweb.link"}, cid)

	s.Equal([]string{
		"https://ipfs.io/ipfs/" + cid,
		"https://dweb.link/ipfs/" + cid,
	}, urls)
}

func (s *URITestSuite) Test_NewUploader() {
	u, err := uploader.NewUploader(core.UploaderConfig{})
	s.Nil(err)
	s.Nil(u)

	u, err = uploader.NewUploader(core.UploaderConfig{Type: core.IPFSUploader})
	s.Nil(err)
	s.NotNil(u)

	_, err = uploader.NewUploader(core.UploaderConfig{Type: "ftp"})
	s.NotNil(err)
}

type IPFSUploaderTestSuite struct {
	suite.Suite
	server   *httptest.Server
	requests int32
	failures int32
	auth     string
}

func TestRunIPFSUploaderTestSuite(t *testing.T) {
	suite.Run(t, new(IPFSUploaderTestSuite))
}

func (s *IPFSUploaderTestSuite) SetupTest() {
	s.requests = 0
	s.failures = 0
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&s.requests, 1)
		s.auth = r.Header.Get("Authorization")
		if n <= atomic.LoadInt32(&s.failures) {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil || header.Filename != "1.json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		data, _ := io.ReadAll(file)
		if !strings.Contains(string(data), "Top Dog") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"IpfsHash":"` + cid + `","PinSize":10}`))
	}))
}

func (s *IPFSUploaderTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *IPFSUploaderTestSuite) uploader() *uploader.IPFSUploader {
	return uploader.NewIPFSUploader(core.UploaderConfig{
		URL:       s.server.URL,
		AuthToken: "jwt",
	}, "https://gateway.pinata.cloud")
}

func (s *IPFSUploaderTestSuite) Test_Upload() {
	uri, err := s.uploader().Upload(context.Background(), "1.json", []byte(`{"name":"Top Dog"}`))

	s.Nil(err)
	s.Equal("https://gateway.pinata.cloud/ipfs/"+cid, uri)
	s.Equal("Bearer jwt", s.auth)
}

func (s *IPFSUploaderTestSuite) Test_Upload_RetriesFailedRequest() {
	s.failures = 1

	uri, err := s.uploader().Upload(context.Background(), "1.json", []byte(`{"name":"Top Dog"}`))

	s.Nil(err)
	s.Equal("https://gateway.pinata.cloud/ipfs/"+cid, uri)
	s.Equal(int32(2), s.requests)
}

func (s *IPFSUploaderTestSuite) Test_Upload_CancelledContext() {
	s.failures = 10
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.uploader().Upload(ctx, "1.json", []byte(`{"name":"Top Dog"}`))

	s.Equal(chains.NetworkErrorCode, chains.ErrorCode(err))
}

type S3UploaderTestSuite struct {
	suite.Suite
	putter *mock_uploader.MockObjectPutter
}

func TestRunS3UploaderTestSuite(t *testing.T) {
	suite.Run(t, new(S3UploaderTestSuite))
}

func (s *S3UploaderTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.putter = mock_uploader.NewMockObjectPutter(ctrl)
}

func (s *S3UploaderTestSuite) Test_Upload() {
	s.putter.EXPECT().PutObject(
		gomock.Any(), "metadata", "1.json", gomock.Any(), int64(2), minio.PutObjectOptions{ContentType: "application/json"},
	).Return(minio.UploadInfo{ETag: "etag"}, nil)
	u := uploader.NewS3UploaderWithClient(s.putter, "metadata", "https://cdn.example.com/")

	uri, err := u.Upload(context.Background(), "1.json", []byte("{}"))

	s.Nil(err)
	s.Equal("https://cdn.example.com/1.json", uri)
}

func (s *S3UploaderTestSuite) Test_Upload_Failure() {
	s.putter.EXPECT().PutObject(
		gomock.Any(), "metadata", "1.json", gomock.Any(), int64(2), gomock.Any(),
	).Return(minio.UploadInfo{}, errors.New("access denied"))
	u := uploader.NewS3UploaderWithClient(s.putter, "metadata", "https://cdn.example.com")

	_, err := u.Upload(context.Background(), "1.json", []byte("{}"))

	s.Equal(chains.NetworkErrorCode, chains.ErrorCode(err))
}
