package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
	"github.com/rafabene/contactpro-backend/internal/services"
)

var _ = Describe("ContactService", func() {
	var (
		ctx              context.Context
		contactRepo      *memContactRepo
		conversationRepo *memConversationRepo
		service          *services.ContactService
	)

	const (
		ownerID    = "user-1"
		intruderID = "user-2"
	)

	BeforeEach(func() {
		ctx = context.Background()
		contactRepo = newMemContactRepo()
		conversationRepo = newMemConversationRepo()
		service = services.NewContactService(contactRepo, conversationRepo, nopUnitOfWork{}, nopLogger{})
	})

	Describe("CreateContact", func() {
		It("deve criar um contato com email normalizado", func() {
			contact, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				LastName:  "Silva",
				Email:     "  Maria.Silva@Example.COM ",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(contact.ID).NotTo(BeEmpty())
			Expect(contact.UserID).To(Equal(ownerID))
			Expect(contact.Email.String()).To(Equal("maria.silva@example.com"))
		})

		It("deve rejeitar email inválido", func() {
			_, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "nao-e-um-email",
			})

			Expect(err).To(MatchError(errors.ErrInvalidEmail))
		})

		It("deve rejeitar email duplicado do mesmo dono", func() {
			_, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Outra Maria",
				Email:     "maria@example.com",
			})
			Expect(err).To(MatchError(errors.ErrContactEmailExists))
		})

		It("deve permitir o mesmo email para donos diferentes", func() {
			_, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateContact(ctx, intruderID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("deve permitir reutilizar o email de um contato deletado", func() {
			first, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteContact(ctx, ownerID, first.ID)).To(Succeed())

			_, err = service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("deve rejeitar mais de 20 tags", func() {
			tags := make([]string, 21)
			for i := range tags {
				tags[i] = "tag"
			}

			_, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
				Tags:      tags,
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetContact", func() {
		It("não deve expor contatos de outro dono", func() {
			contact, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.GetContact(ctx, intruderID, contact.ID)
			Expect(err).To(MatchError(errors.ErrContactNotFound))
		})

		It("deve retornar not found para contato deletado", func() {
			contact, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteContact(ctx, ownerID, contact.ID)).To(Succeed())

			_, err = service.GetContact(ctx, ownerID, contact.ID)
			Expect(err).To(MatchError(errors.ErrContactNotFound))
		})
	})

	Describe("UpdateContact", func() {
		It("deve atualizar os campos do contato", func() {
			contact, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			company := "Acme"
			updated, err := service.UpdateContact(ctx, ownerID, contact.ID, services.ContactInput{
				FirstName: "Maria",
				LastName:  "Souza",
				Email:     "maria@example.com",
				Company:   &company,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.LastName).To(Equal("Souza"))
			Expect(updated.Company).To(HaveValue(Equal("Acme")))
		})

		It("deve rejeitar troca para email já usado por outro contato", func() {
			_, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			other, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Joana",
				Email:     "joana@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.UpdateContact(ctx, ownerID, other.ID, services.ContactInput{
				FirstName: "Joana",
				Email:     "maria@example.com",
			})
			Expect(err).To(MatchError(errors.ErrContactEmailExists))
		})

		It("deve aceitar update que mantém o próprio email", func() {
			contact, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.UpdateContact(ctx, ownerID, contact.ID, services.ContactInput{
				FirstName: "Maria Clara",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("DeleteContact", func() {
		It("deve deletar o contato e cascatear para as conversas", func() {
			contact, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			conversationService := services.NewConversationService(conversationRepo, contactRepo, nopLogger{})
			_, err = conversationService.RecordConversation(ctx, ownerID, contact.ID, "Proposta", "Segue em anexo.", time.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(conversationRepo.live(contact.ID)).To(Equal(1))

			Expect(service.DeleteContact(ctx, ownerID, contact.ID)).To(Succeed())
			Expect(conversationRepo.live(contact.ID)).To(BeZero())
		})

		It("não deve deletar contato de outro dono", func() {
			contact, err := service.CreateContact(ctx, ownerID, services.ContactInput{
				FirstName: "Maria",
				Email:     "maria@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			err = service.DeleteContact(ctx, intruderID, contact.ID)
			Expect(err).To(MatchError(errors.ErrContactNotFound))

			_, err = service.GetContact(ctx, ownerID, contact.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("ListContacts", func() {
		BeforeEach(func() {
			names := []struct{ first, email, company string }{
				{"Ana", "ana@example.com", "Acme"},
				{"Bruno", "bruno@example.com", "Globex"},
				{"Carla", "carla@acme.dev", "Acme"},
			}
			for _, n := range names {
				company := n.company
				_, err := service.CreateContact(ctx, ownerID, services.ContactInput{
					FirstName: n.first,
					Email:     n.email,
					Company:   &company,
				})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("deve listar apenas contatos do dono", func() {
			contacts, total, err := service.ListContacts(ctx, intruderID, repositories.ContactFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
			Expect(contacts).To(BeEmpty())
		})

		It("deve filtrar por busca em nome, email e empresa", func() {
			_, total, err := service.ListContacts(ctx, ownerID, repositories.ContactFilters{Search: "acme"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
		})

		It("deve paginar mantendo o total", func() {
			contacts, total, err := service.ListContacts(ctx, ownerID, repositories.ContactFilters{Page: 2, PageSize: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(contacts).To(HaveLen(1))
		})
	})
})
