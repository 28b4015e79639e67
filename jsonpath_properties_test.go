package jsonpath_test

import (
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	jsonpath "github.com/njchilds90/jsonpath-core"
)

var _ = Describe("Testable properties", func() {
	var doc jsonpath.Value

	BeforeEach(func() {
		var err error
		doc, err = jsonpath.Decode([]byte(`[10,20,30]`))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("find_first", func() {
		It("equals the first element of find", func() {
			all, err := jsonpath.Find(jsonpath.NewRoot().Array(), doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).NotTo(BeEmpty())

			first, err := jsonpath.FindFirst(jsonpath.NewRoot().Array(), doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(jsonpath.ValueEqual(first, all[0])).To(BeTrue())
		})

		It("raises NotFound when the sequence is empty", func() {
			empty, err := jsonpath.Decode([]byte(`[]`))
			Expect(err).NotTo(HaveOccurred())

			_, err = jsonpath.FindFirst(jsonpath.NewRoot().Array(), empty)
			Expect(jsonpath.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("find_iter", func() {
		It("yields exactly the sequence find returns", func() {
			want, err := jsonpath.Find(jsonpath.NewRoot().Array(), doc)
			Expect(err).NotTo(HaveOccurred())

			var got []jsonpath.Value
			for v, err := range jsonpath.FindIter(jsonpath.NewRoot().Array(), doc) {
				Expect(err).NotTo(HaveOccurred())
				got = append(got, v)
			}
			Expect(got).To(HaveLen(len(want)))
			for i := range want {
				Expect(jsonpath.ValueEqual(got[i], want[i])).To(BeTrue())
			}
		})
	})

	Describe("evaluation", func() {
		It("never mutates the document it walks", func() {
			nested, err := jsonpath.Decode([]byte(`{"items":[1,2,3],"meta":{"count":3}}`))
			Expect(err).NotTo(HaveOccurred())

			before, err := nested.MarshalJSON()
			Expect(err).NotTo(HaveOccurred())

			_, err = jsonpath.Find(jsonpath.NewRoot().Search(jsonpath.NewName(nil)), nested)
			Expect(err).NotTo(HaveOccurred())

			after, err := nested.MarshalJSON()
			Expect(err).NotTo(HaveOccurred())
			Expect(string(after)).To(Equal(string(before)))
		})
	})

	Describe("chain(a, b)", func() {
		It("keeps begin(c) == begin(b) == begin(a) == a for every node in the chain", func() {
			a := jsonpath.NewRoot()
			b := a.Array()
			c := b.Predicate(jsonpath.NewSelf().GreaterThan(jsonpath.NewValue(jsonpath.Int(15))))

			Expect(a.Begin()).To(BeIdenticalTo(a))
			Expect(b.Begin()).To(BeIdenticalTo(a))
			Expect(c.Begin()).To(BeIdenticalTo(a))
		})
	})

	Describe("Not(Not(e))", func() {
		It("is the element-wise double negation of e's results when e finds at least one value", func() {
			e := jsonpath.NewValue(jsonpath.Bool(true))
			want, err := jsonpath.Find(e, doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(want).To(HaveLen(1))

			got, err := jsonpath.Find(jsonpath.NewNot(jsonpath.NewNot(jsonpath.NewValue(jsonpath.Bool(true)))), doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(1))
			b0, _ := want[0].AsBool()
			b1, _ := got[0].AsBool()
			Expect(b1).To(Equal(b0))
		})

		It("produces one result (false), not zero, when e itself finds nothing", func() {
			missingField, err := jsonpath.Decode([]byte(`{"a":1}`))
			Expect(err).NotTo(HaveOccurred())

			_, err = jsonpath.Find(jsonpath.NewName(ptr("enable")), missingField)
			Expect(jsonpath.IsNotFound(err)).To(BeTrue())

			got, err := jsonpath.Find(jsonpath.NewNot(jsonpath.NewNot(jsonpath.NewName(ptr("enable")))), missingField)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(1))
			b, _ := got[0].AsBool()
			Expect(b).To(BeFalse())
		})
	})
})
