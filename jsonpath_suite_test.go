package jsonpath_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
)

func TestJSONPathProperties(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "JSONPath Core Properties Suite")
}
